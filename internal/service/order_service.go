package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderDateLayout = "2006-01-02"

// DTO for creating and fully updating a purchase order. The owner is never
// taken from the payload; it always comes from the authenticated identity.
type OrderRequest struct {
	OrderNo         string          `json:"order_no" binding:"required"`
	OrderDate       string          `json:"order_date" binding:"required"`
	Customer        string          `json:"customer" binding:"required"`
	Broker          string          `json:"broker"`
	Mill            string          `json:"mill"`
	Weight          decimal.Decimal `json:"weight"`
	Bags            int             `json:"bags"`
	Product         string          `json:"product"`
	Rate            decimal.Decimal `json:"rate"`
	TermsConditions string          `json:"terms_conditions"`
}

// OrderService defines the owner-scoped business logic for purchase orders.
type OrderService interface {
	ListOrders(ctx context.Context, owner uuid.UUID, page, limit int) ([]model.PurchaseOrder, int64, error)
	GetOrder(ctx context.Context, owner, id uuid.UUID) (*model.PurchaseOrder, error)
	CreateOrder(ctx context.Context, owner uuid.UUID, req OrderRequest) (*model.PurchaseOrder, error)
	UpdateOrder(ctx context.Context, owner, id uuid.UUID, req OrderRequest) (*model.PurchaseOrder, error)
	DeleteOrder(ctx context.Context, owner, id uuid.UUID) error
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService returns a new instance of OrderService
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func parseOrderDate(s string) (time.Time, error) {
	d, err := time.Parse(orderDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: order_date must be YYYY-MM-DD", ErrValidation)
	}
	return d, nil
}

func (s *orderService) ListOrders(ctx context.Context, owner uuid.UUID, page, limit int) ([]model.PurchaseOrder, int64, error) {
	orders, total, err := s.repo.ListByOwner(ctx, owner, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if orders == nil {
		orders = []model.PurchaseOrder{}
	}
	return orders, total, nil
}

func (s *orderService) GetOrder(ctx context.Context, owner, id uuid.UUID) (*model.PurchaseOrder, error) {
	order, err := s.repo.GetForOwner(ctx, id, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A record owned by someone else reports the same way as a
			// missing one, so existence is not leaked.
			return nil, fmt.Errorf("purchase order %w", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) CreateOrder(ctx context.Context, owner uuid.UUID, req OrderRequest) (*model.PurchaseOrder, error) {
	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		return nil, err
	}

	// order_no is unique across all users, not per owner.
	taken, err := s.repo.OrderNoExists(ctx, req.OrderNo, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("order number %w", ErrConflict)
	}

	order := &model.PurchaseOrder{
		OrderNo:         req.OrderNo,
		OrderDate:       orderDate,
		Customer:        req.Customer,
		Broker:          req.Broker,
		Mill:            req.Mill,
		Weight:          req.Weight,
		Bags:            req.Bags,
		Product:         req.Product,
		Rate:            req.Rate,
		TermsConditions: req.TermsConditions,
		CreatedBy:       owner,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("order number %w", ErrConflict)
		}
		return nil, err
	}

	return order, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, owner, id uuid.UUID, req OrderRequest) (*model.PurchaseOrder, error) {
	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.OrderNoExists(ctx, req.OrderNo, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("order number %w", ErrConflict)
	}

	order := &model.PurchaseOrder{
		ID:              id,
		OrderNo:         req.OrderNo,
		OrderDate:       orderDate,
		Customer:        req.Customer,
		Broker:          req.Broker,
		Mill:            req.Mill,
		Weight:          req.Weight,
		Bags:            req.Bags,
		Product:         req.Product,
		Rate:            req.Rate,
		TermsConditions: req.TermsConditions,
	}

	found, err := s.repo.UpdateOwned(ctx, order, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("order number %w", ErrConflict)
		}
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("purchase order %w", ErrNotFound)
	}

	return s.GetOrder(ctx, owner, id)
}

func (s *orderService) DeleteOrder(ctx context.Context, owner, id uuid.UUID) error {
	found, err := s.repo.DeleteOwned(ctx, id, owner)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("purchase order %w", ErrNotFound)
	}
	return nil
}
