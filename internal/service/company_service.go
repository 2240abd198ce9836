package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DTO bound from the multipart form. The logo file itself is handled by the
// handler; only the stored path reaches the service.
type CompanyRequest struct {
	CompanyName string `form:"company_name" binding:"required"`
	Address     string `form:"address"`
	Mobile      string `form:"mobile"`
	Email       string `form:"email"`
	GSTNumber   string `form:"gst_number"`
	BankDetails string `form:"bank_details"`
}

// CompanyService defines the owner-scoped business logic for the company
// profile. Each user has at most one profile; saving is create-or-update.
type CompanyService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.CompanyProfile, error)
	// SaveProfile creates the user's profile or updates the existing row.
	// An empty logoPath keeps the previously stored logo.
	SaveProfile(ctx context.Context, userID uuid.UUID, req CompanyRequest, logoPath string) (*model.CompanyProfile, error)
}

type companyService struct {
	repo repository.CompanyRepository
}

// NewCompanyService returns a new instance of CompanyService
func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.CompanyProfile, error) {
	profile, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company profile %w", ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

func (s *companyService) SaveProfile(ctx context.Context, userID uuid.UUID, req CompanyRequest, logoPath string) (*model.CompanyProfile, error) {
	existing, err := s.repo.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing == nil {
		profile := &model.CompanyProfile{
			CompanyName: req.CompanyName,
			Address:     req.Address,
			Mobile:      req.Mobile,
			Email:       req.Email,
			GSTNumber:   req.GSTNumber,
			BankDetails: req.BankDetails,
			LogoPath:    logoPath,
			UserID:      userID,
		}
		if err := s.repo.Create(ctx, profile); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a create race against a concurrent save for the same
				// user; the unique index on user_id keeps the row count at
				// one either way.
				return nil, fmt.Errorf("company profile %w", ErrConflict)
			}
			return nil, err
		}
		return profile, nil
	}

	existing.CompanyName = req.CompanyName
	existing.Address = req.Address
	existing.Mobile = req.Mobile
	existing.Email = req.Email
	existing.GSTNumber = req.GSTNumber
	existing.BankDetails = req.BankDetails
	if logoPath != "" {
		existing.LogoPath = logoPath
	}

	found, err := s.repo.UpdateOwned(ctx, existing, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("company profile %w", ErrNotFound)
	}

	return existing, nil
}
