package service

import (
	"context"
	"errors"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"
)

func TestOrderNoConflictAcrossUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "secret123", model.RoleUser)
	bob := seedUser(t, db, "bob", "secret123", model.RoleUser)

	mustCreateOrder(t, svc, alice, "PO-100")

	// Uniqueness is global, not per owner.
	if _, err := svc.CreateOrder(ctx, bob.ID, orderRequest("PO-100")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate order_no, got %v", err)
	}

	if _, err := svc.CreateOrder(ctx, bob.ID, orderRequest("PO-101")); err != nil {
		t.Fatalf("distinct order_no must succeed: %v", err)
	}
}

func TestCreateOrderStampsOwnerAndValidatesDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "secret123", model.RoleUser)

	order := mustCreateOrder(t, svc, alice, "PO-1")
	if order.CreatedBy != alice.ID {
		t.Fatalf("owner not stamped from identity: %s", order.CreatedBy)
	}

	req := orderRequest("PO-2")
	req.OrderDate = "15/03/2024"
	if _, err := svc.CreateOrder(ctx, alice.ID, req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad date, got %v", err)
	}
}

func TestListOrdersReturnsOnlyOwnRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "secret123", model.RoleUser)
	bob := seedUser(t, db, "bob", "secret123", model.RoleUser)
	carol := seedUser(t, db, "carol", "secret123", model.RoleUser)

	mustCreateOrder(t, svc, alice, "PO-1")
	mustCreateOrder(t, svc, alice, "PO-2")
	mustCreateOrder(t, svc, bob, "PO-3")

	orders, total, err := svc.ListOrders(ctx, alice.ID, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("total: got %d, want 2", total)
	}
	for _, o := range orders {
		if o.CreatedBy != alice.ID {
			t.Fatalf("foreign order leaked into listing: %s", o.OrderNo)
		}
	}

	orders, total, err = svc.ListOrders(ctx, carol.ID, 1, 20)
	if err != nil {
		t.Fatalf("empty list: %v", err)
	}
	if total != 0 || orders == nil || len(orders) != 0 {
		t.Fatalf("empty dataset: got %v (total %d), want empty slice", orders, total)
	}
}

func TestMutateForeignOrderReportsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "secret123", model.RoleUser)
	bob := seedUser(t, db, "bob", "secret123", model.RoleUser)
	order := mustCreateOrder(t, svc, alice, "PO-1")

	if _, err := svc.GetOrder(ctx, bob.ID, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign get: expected ErrNotFound, got %v", err)
	}

	req := orderRequest("PO-1")
	req.Customer = "Hijacked Ltd"
	if _, err := svc.UpdateOrder(ctx, bob.ID, order.ID, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update: expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteOrder(ctx, bob.ID, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: expected ErrNotFound, got %v", err)
	}

	got, err := svc.GetOrder(ctx, alice.ID, order.ID)
	if err != nil {
		t.Fatalf("owner reload: %v", err)
	}
	if got.Customer != "Acme Traders" {
		t.Fatalf("foreign mutation altered the row: %q", got.Customer)
	}
}

func TestUpdateOrderKeepsOwnOrderNo(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "secret123", model.RoleUser)
	order := mustCreateOrder(t, svc, alice, "PO-1")

	req := orderRequest("PO-1")
	req.Customer = "Acme Traders Pvt"
	updated, err := svc.UpdateOrder(ctx, alice.ID, order.ID, req)
	if err != nil {
		t.Fatalf("update keeping order_no: %v", err)
	}
	if updated.Customer != "Acme Traders Pvt" {
		t.Fatalf("update not applied: %+v", updated)
	}

	// Taking another order's number is still a conflict.
	mustCreateOrder(t, svc, alice, "PO-2")
	req.OrderNo = "PO-2"
	if _, err := svc.UpdateOrder(ctx, alice.ID, order.ID, req); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
