package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"backend/internal/auth"
	"backend/internal/database"
	"backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testBcryptCost = 4 // bcrypt.MinCost keeps the suite fast

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword(password, testBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func orderRequest(orderNo string) OrderRequest {
	return OrderRequest{
		OrderNo:   orderNo,
		OrderDate: "2024-03-15",
		Customer:  "Acme Traders",
		Product:   "Wheat",
		Bags:      120,
	}
}

func mustCreateOrder(t *testing.T, svc OrderService, owner *model.User, orderNo string) *model.PurchaseOrder {
	t.Helper()
	order, err := svc.CreateOrder(context.Background(), owner.ID, orderRequest(orderNo))
	if err != nil {
		t.Fatalf("create order %s: %v", orderNo, err)
	}
	return order
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret", 24*time.Hour)
}
