// Command createadmin provisions (or re-provisions) an admin account
// against the same database the API uses. It replaces ad-hoc seeding
// scripts: run it once after the first deployment.
package main

import (
	"context"
	"flag"
	"time"

	"backend/internal/auth"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/logger"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		logger.Log.Fatal("-password is required")
	}

	if err := godotenv.Load("configs/.env"); err != nil {
		logger.Log.Info("No configs/.env file found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Configuration error: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewConnection(cfg.DSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		logger.Log.Fatalf("Database connection failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hash, err := auth.HashPassword(*password, cfg.BcryptCost)
	if err != nil {
		logger.Log.Fatalf("Failed to hash password: %v", err)
	}

	users := repository.NewUserRepository(db)
	if existing, err := users.GetByUsername(ctx, *username); err == nil {
		existing.Email = *email
		existing.Role = model.RoleAdmin
		existing.Password = hash
		if err := users.Update(ctx, existing); err != nil {
			logger.Log.Fatalf("Failed to update admin account: %v", err)
		}
		logger.Log.Infof("Admin account %q updated", *username)
		return
	}

	admin := &model.User{
		Username: *username,
		Email:    *email,
		Password: hash,
		Role:     model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		logger.Log.Fatalf("Failed to create admin account: %v", err)
	}
	logger.Log.Infof("Admin account %q created", *username)
}
