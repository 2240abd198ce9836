package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository provides per-user access to company profiles.
type CompanyRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*model.CompanyProfile, error)
	Create(ctx context.Context, profile *model.CompanyProfile) error
	// UpdateOwned updates the profile row matching both id and user_id in a
	// single statement and reports whether a row matched.
	UpdateOwned(ctx context.Context, profile *model.CompanyProfile, userID uuid.UUID) (bool, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepository) Create(ctx context.Context, profile *model.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *companyRepository) UpdateOwned(ctx context.Context, profile *model.CompanyProfile, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.CompanyProfile{}).
		Where("id = ? AND user_id = ?", profile.ID, userID).
		Updates(map[string]interface{}{
			"company_name": profile.CompanyName,
			"address":      profile.Address,
			"mobile":       profile.Mobile,
			"email":        profile.Email,
			"gst_number":   profile.GSTNumber,
			"bank_details": profile.BankDetails,
			"logo_path":    profile.LogoPath,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
