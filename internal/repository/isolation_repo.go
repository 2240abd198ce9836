package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IsolationRepository scans for and repairs rows whose owner column is
// NULL. Such rows can only come from data created before owner-stamping
// was enforced; the application never writes them.
type IsolationRepository interface {
	CountOrphanOrders(ctx context.Context) (int64, error)
	CountOrphanProfiles(ctx context.Context) (int64, error)
	ReassignOrphanOrders(ctx context.Context, owner uuid.UUID) (int64, error)
	ReassignOrphanProfiles(ctx context.Context, owner uuid.UUID) (int64, error)
}

type isolationRepository struct {
	db *gorm.DB
}

func NewIsolationRepository(db *gorm.DB) IsolationRepository {
	return &isolationRepository{db: db}
}

func (r *isolationRepository) CountOrphanOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("created_by IS NULL").Count(&count).Error
	return count, err
}

func (r *isolationRepository) CountOrphanProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CompanyProfile{}).
		Where("user_id IS NULL").Count(&count).Error
	return count, err
}

func (r *isolationRepository) ReassignOrphanOrders(ctx context.Context, owner uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("created_by IS NULL").Update("created_by", owner)
	return res.RowsAffected, res.Error
}

func (r *isolationRepository) ReassignOrphanProfiles(ctx context.Context, owner uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.CompanyProfile{}).
		Where("user_id IS NULL").Update("user_id", owner)
	return res.RowsAffected, res.Error
}
