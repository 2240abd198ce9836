package main

import (
	"net/http"
	"os"
	"time"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/auth"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/logger"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Purchase Order Management API
// @version         1.0
// @description     Purchase-order management backend with role-based access control and per-user data isolation.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		logger.Log.Info("No configs/.env file found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Configuration error: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.IsDevSecret() {
		logger.Log.Warn("JWT_SECRET not set, using development fallback secret")
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.NewConnection(cfg.DSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		logger.Log.Fatalf("Database connection failed: %v", err)
	}
	logger.Log.Info("Connected to PostgreSQL successfully")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	isolationRepo := repository.NewIsolationRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	orderService := service.NewOrderService(orderRepo)
	companyService := service.NewCompanyService(companyRepo)
	isolationService := service.NewIsolationService(isolationRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	orderHandler := handler.NewOrderHandler(orderService)
	companyHandler := handler.NewCompanyHandler(companyService, cfg.UploadDir)
	adminHandler := handler.NewAdminHandler(isolationService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded company logos
	router.Static("/uploads", cfg.UploadDir)

	// Health checks
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now(),
			"environment": cfg.GinMode,
			"apiVersion":  "1.0.0",
		})
	})

	// API routes. Authenticate runs per protected group; admin-only routes
	// additionally chain RequireAdmin.
	authn := middleware.Authenticate(tokens)
	api := router.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api, authn)
	orderHandler.RegisterRoutes(api, authn)
	companyHandler.RegisterRoutes(api, authn)
	adminHandler.RegisterRoutes(api, authn)

	logger.Log.Infof("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("Server failed: %v", err)
	}
}
