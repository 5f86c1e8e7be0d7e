package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sitegate-backend/auth-service/handlers"
	"sitegate-backend/auth-service/services"
	"sitegate-backend/shared/config"
	"sitegate-backend/shared/database"
	"sitegate-backend/shared/database/stores"
	"sitegate-backend/shared/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	// Wire stores, services, and handlers
	accountStore := stores.NewGormAccountStore(db)
	tokenStore := stores.NewGormResetTokenStore(db)
	emailService := mailer.NewEmailService(cfg)

	accountService := services.NewAccountService(accountStore)
	resetTokenService := services.NewResetTokenService(tokenStore)
	authService := services.NewAuthService(accountService, resetTokenService, emailService, cfg.FrontendURL)

	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(authService)

	router := gin.Default()

	// Allow the static frontend to reach this backend
	router.Use(cors.Default())

	// Auth endpoints
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// Password management endpoints
	router.POST("/api/auth/forgot-password", authHandler.ForgotPassword)
	router.POST("/api/auth/reset-password", authHandler.ResetPassword)

	// Admin endpoints (no authentication, see AdminHandler)
	router.POST("/api/admin/delete-account", adminHandler.DeleteAccount)

	// Home page
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from Backend Server! This is a simple backend for a static site.")
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "auth",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Backend server listening on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
