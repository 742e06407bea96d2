// seed-admin creates or updates the bootstrap admin user so the dataset
// endpoints have at least one caller that passes the authorization gate.
//
// Usage:
//
//	DB_HOST=... DB_USER=... DB_PASSWORD=... DB_NAME=... go run ./cmd/seed-admin
//
// Credentials come from ADMIN_USERNAME / ADMIN_EMAIL / ADMIN_PASSWORD, with
// flag overrides for one-off runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/internal/user/repository"
	"github.com/traceright/dataset-service/pkg/auth"
	"github.com/traceright/dataset-service/pkg/database"
)

func main() {
	_ = godotenv.Load()

	username := flag.String("username", getEnv("ADMIN_USERNAME", "admin"), "admin username")
	email := flag.String("email", getEnv("ADMIN_EMAIL", "admin@example.com"), "admin email")
	password := flag.String("password", getEnv("ADMIN_PASSWORD", ""), "admin password (required)")
	fullName := flag.String("full-name", getEnv("ADMIN_FULL_NAME", "Dataset Admin"), "admin display name")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "admin password is required: set ADMIN_PASSWORD or pass -password")
		os.Exit(1)
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "datasetdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	repo := repository.NewGormUserRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	existing, err := repo.FindByUsername(*username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Fprintf(os.Stderr, "failed to lookup user: %v\n", err)
			os.Exit(1)
		}
		u := domain.User{
			Username: *username,
			Email:    *email,
			Password: hashed,
			FullName: *fullName,
			Role:     domain.RoleAdmin,
			Admin:    true,
			IsActive: true,
		}
		if err := repo.Create(&u); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create admin user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created admin user %q (id=%d)\n", *username, u.ID)
		return
	}

	// Update existing user: ensure password and admin privilege
	existing.Password = hashed
	existing.Email = *email
	existing.FullName = *fullName
	existing.Role = domain.RoleAdmin
	existing.Admin = true
	existing.IsActive = true
	if err := repo.Update(existing); err != nil {
		fmt.Fprintf(os.Stderr, "failed to update admin user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Updated admin user %q (id=%d)\n", *username, existing.ID)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
