package main

import (
	"context"
	"errors"
	"log"

	"sitegate-backend/auth-service/services"
	"sitegate-backend/shared/config"
	"sitegate-backend/shared/database"
	"sitegate-backend/shared/database/stores"
)

func main() {
	log.Println("🌱 Starting database seeding...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	accountService := services.NewAccountService(stores.NewGormAccountStore(db))

	_, err = accountService.Register(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) || errors.Is(err, services.ErrDuplicateEmail) {
			log.Printf("✅ Admin account %q already exists - skipping", cfg.AdminUsername)
			return
		}
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("✅ Admin account %q created successfully!", cfg.AdminUsername)
}
