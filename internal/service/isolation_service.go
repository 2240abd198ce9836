package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/logger"
	"backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// IsolationReport summarizes one repair run over the owner columns.
type IsolationReport struct {
	OrdersMissingOwner   int64  `json:"orders_missing_owner"`
	ProfilesMissingOwner int64  `json:"profiles_missing_owner"`
	OrdersFixed          int64  `json:"orders_fixed"`
	ProfilesFixed        int64  `json:"profiles_fixed"`
	FallbackOwner        string `json:"fallback_owner,omitempty"`
}

// Fixed reports whether the run repaired anything.
func (r IsolationReport) Fixed() bool { return r.OrdersFixed > 0 || r.ProfilesFixed > 0 }

// IsolationService verifies and repairs the per-user ownership invariant:
// every purchase order and company profile must reference an owning user.
type IsolationService interface {
	// VerifyAndRepair scans for rows with a NULL owner and reassigns them
	// to the earliest-created admin account. Running it again immediately
	// finds nothing to fix.
	VerifyAndRepair(ctx context.Context) (*IsolationReport, error)
}

type isolationService struct {
	repo  repository.IsolationRepository
	users repository.UserRepository
}

// NewIsolationService returns a new instance of IsolationService
func NewIsolationService(repo repository.IsolationRepository, users repository.UserRepository) IsolationService {
	return &isolationService{repo: repo, users: users}
}

func (s *isolationService) VerifyAndRepair(ctx context.Context) (*IsolationReport, error) {
	report := &IsolationReport{}

	var err error
	if report.OrdersMissingOwner, err = s.repo.CountOrphanOrders(ctx); err != nil {
		return nil, err
	}
	if report.ProfilesMissingOwner, err = s.repo.CountOrphanProfiles(ctx); err != nil {
		return nil, err
	}

	if report.OrdersMissingOwner == 0 && report.ProfilesMissingOwner == 0 {
		return report, nil
	}

	fallback, err := s.users.FirstAdmin(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no admin account available as fallback owner")
		}
		return nil, err
	}
	report.FallbackOwner = fallback.Username

	if report.OrdersMissingOwner > 0 {
		if report.OrdersFixed, err = s.repo.ReassignOrphanOrders(ctx, fallback.ID); err != nil {
			return nil, err
		}
	}
	if report.ProfilesMissingOwner > 0 {
		if report.ProfilesFixed, err = s.repo.ReassignOrphanProfiles(ctx, fallback.ID); err != nil {
			return nil, err
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"orders_fixed":   report.OrdersFixed,
		"profiles_fixed": report.ProfilesFixed,
		"fallback_owner": report.FallbackOwner,
	}).Info("repaired rows with missing owner")

	return report, nil
}
