package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func insertOrphanOrder(t *testing.T, db *gorm.DB, orderNo string) {
	t.Helper()
	now := time.Now()
	err := db.Exec(
		`INSERT INTO purchase_orders (id, order_no, order_date, customer, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, NULL, ?, ?)`,
		uuid.NewString(), orderNo, now, "Legacy Customer", now, now,
	).Error
	if err != nil {
		t.Fatalf("insert orphan order: %v", err)
	}
}

func insertOrphanProfile(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	now := time.Now()
	err := db.Exec(
		`INSERT INTO company_profile (id, company_name, user_id, created_at, updated_at)
		 VALUES (?, ?, NULL, ?, ?)`,
		uuid.NewString(), name, now, now,
	).Error
	if err != nil {
		t.Fatalf("insert orphan profile: %v", err)
	}
}

func TestVerifyAndRepairReassignsOrphans(t *testing.T) {
	db := newTestDB(t)
	svc := NewIsolationService(repository.NewIsolationRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	admin := seedUser(t, db, "admin", "secret123", model.RoleAdmin)
	seedUser(t, db, "alice", "secret123", model.RoleUser)

	insertOrphanOrder(t, db, "PO-LEGACY-1")
	insertOrphanOrder(t, db, "PO-LEGACY-2")
	insertOrphanProfile(t, db, "Legacy Mills")

	report, err := svc.VerifyAndRepair(ctx)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	if report.OrdersMissingOwner != 2 || report.OrdersFixed != 2 {
		t.Fatalf("orders: found %d fixed %d, want 2/2", report.OrdersMissingOwner, report.OrdersFixed)
	}
	if report.ProfilesMissingOwner != 1 || report.ProfilesFixed != 1 {
		t.Fatalf("profiles: found %d fixed %d, want 1/1", report.ProfilesMissingOwner, report.ProfilesFixed)
	}
	if report.FallbackOwner != "admin" {
		t.Fatalf("fallback owner: got %q, want admin", report.FallbackOwner)
	}
	if !report.Fixed() {
		t.Fatalf("report must flag that repairs happened")
	}

	var reassigned int64
	if err := db.Model(&model.PurchaseOrder{}).Where("created_by = ?", admin.ID).Count(&reassigned).Error; err != nil {
		t.Fatalf("count reassigned: %v", err)
	}
	if reassigned != 2 {
		t.Fatalf("reassigned orders: got %d, want 2", reassigned)
	}
}

func TestVerifyAndRepairIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewIsolationService(repository.NewIsolationRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "admin", "secret123", model.RoleAdmin)
	insertOrphanOrder(t, db, "PO-LEGACY-1")
	insertOrphanProfile(t, db, "Legacy Mills")

	if _, err := svc.VerifyAndRepair(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}

	second, err := svc.VerifyAndRepair(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.OrdersMissingOwner != 0 || second.ProfilesMissingOwner != 0 ||
		second.OrdersFixed != 0 || second.ProfilesFixed != 0 {
		t.Fatalf("second run must fix nothing: %+v", second)
	}
	if second.Fixed() {
		t.Fatalf("second run reported repairs")
	}
}

func TestVerifyAndRepairCleanDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewIsolationService(repository.NewIsolationRepository(db), repository.NewUserRepository(db))

	// No admin exists, but nothing is orphaned either; the scan alone
	// must succeed.
	report, err := svc.VerifyAndRepair(context.Background())
	if err != nil {
		t.Fatalf("clean scan: %v", err)
	}
	if report.Fixed() || report.OrdersMissingOwner != 0 || report.ProfilesMissingOwner != 0 {
		t.Fatalf("clean database reported issues: %+v", report)
	}
}
