package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository provides owner-scoped access to purchase orders. Every
// read filters by the owning user and every mutation carries the owner in
// the WHERE clause, so an id guessed by another user never matches a row.
type OrderRepository interface {
	Create(ctx context.Context, order *model.PurchaseOrder) error
	ListByOwner(ctx context.Context, owner uuid.UUID, page, limit int) ([]model.PurchaseOrder, int64, error)
	GetForOwner(ctx context.Context, id, owner uuid.UUID) (*model.PurchaseOrder, error)
	// OrderNoExists reports whether orderNo is taken anywhere, by any user.
	// A non-nil exclude skips that order id (used on update).
	OrderNoExists(ctx context.Context, orderNo string, exclude uuid.UUID) (bool, error)
	// UpdateOwned applies the field values in a single
	// `WHERE id = ? AND created_by = ?` statement and reports whether a row
	// matched.
	UpdateOwned(ctx context.Context, order *model.PurchaseOrder, owner uuid.UUID) (bool, error)
	// DeleteOwned deletes with the same atomic predicate and reports
	// whether a row matched.
	DeleteOwned(ctx context.Context, id, owner uuid.UUID) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByOwner(ctx context.Context, owner uuid.UUID, page, limit int) ([]model.PurchaseOrder, int64, error) {
	var orders []model.PurchaseOrder
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&model.PurchaseOrder{}).Where("created_by = ?", owner).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.
		Where("created_by = ?", owner).
		Order("order_date DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) GetForOwner(ctx context.Context, id, owner uuid.UUID) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	if err := r.db.WithContext(ctx).
		First(&order, "id = ? AND created_by = ?", id, owner).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) OrderNoExists(ctx context.Context, orderNo string, exclude uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).Where("order_no = ?", orderNo)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *orderRepository) UpdateOwned(ctx context.Context, order *model.PurchaseOrder, owner uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("id = ? AND created_by = ?", order.ID, owner).
		Updates(map[string]interface{}{
			"order_no":         order.OrderNo,
			"order_date":       order.OrderDate,
			"customer":         order.Customer,
			"broker":           order.Broker,
			"mill":             order.Mill,
			"weight":           order.Weight,
			"bags":             order.Bags,
			"product":          order.Product,
			"rate":             order.Rate,
			"terms_conditions": order.TermsConditions,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *orderRepository) DeleteOwned(ctx context.Context, id, owner uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, owner).
		Delete(&model.PurchaseOrder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
