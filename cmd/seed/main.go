package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main registers a shopper in the shared users list
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA STOREFRONT - User Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.LoadStorefront()
	base, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer config.CloseDB()
	defer config.CloseRedis()
	log.Printf("✓ Connected to %s storage", cfg.StorageDriver)

	name, email, password := getUserDetails()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	auth := services.NewAuthService(base)
	err = auth.Register(ctx, models.User{Email: email, Password: password, Name: name})
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	case errors.Is(err, services.ErrInvalidEmail):
		fmt.Printf("❌ '%s' is not a valid email address\n", email)
		os.Exit(1)
	case err != nil:
		log.Fatalf("Failed to register user: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ User Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Name:  %s\n", name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront server: go run main.go")
	fmt.Println("2. Sign in at POST /api/v1/auth/login with email and password")
	fmt.Println()
}

func openBackend(cfg config.StorefrontConfig) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageRedis:
		config.ConnectRedis()
		return storage.NewRedisStore(config.RedisClient, 0), nil
	case config.StoragePostgres:
		config.InitDB()
		return storage.NewGormStore(config.EcommerceGorm)
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER=%s does not persist, set redis or postgres", cfg.StorageDriver)
	}
}

// getUserDetails prompts for the new user's details
func getUserDetails() (name, email, password string) {
	fmt.Println("Enter User Details:")
	fmt.Println()

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if services.ValidEmail(email) {
			break
		}
		fmt.Println("❌ Please enter a valid email address")
	}

	// Password
	for {
		fmt.Print("Password: ")
		fmt.Scanln(&password)
		if password != "" {
			break
		}
		fmt.Println("❌ Password cannot be empty")
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return name, email, password
}
