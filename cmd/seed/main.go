package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/addisestates/backend/config"
	"github.com/addisestates/backend/pkg/helpers"
)

// Seeds the bootstrap admin account. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@addisestates.et"
	password := "change-me-now"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (first_name, last_name, email, password_hash, phone, role, is_approved, is_verified)
		VALUES ('Platform', 'Admin', $1, $2, '+251900000000', 'admin', true, true)
		ON CONFLICT (email) DO UPDATE SET role = 'admin', is_approved = true
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)
}
