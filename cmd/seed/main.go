package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/employee-directory/config"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

// Seeds a demo login and a handful of employees for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
	`, email, hash); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	log.Printf("seeded user %s / %s", email, password)

	employees := []struct {
		email, name, address, city, state, zip, phone string
	}{
		{"jane.doe@example.com", "Jane Doe", "100 Market Street", "Sacramento", "CA", "94203", "9165550142"},
		{"john.smith@example.com", "John Smith", "42 Elm Avenue Apt 3", "Portland", "OR", "97201", "5035550198"},
		{"maria.garcia@example.com", "Maria Garcia", "780 Sunset Boulevard", "Austin", "TX", "73301", "5125550173"},
	}
	for _, e := range employees {
		if _, err := db.Exec(`
			INSERT INTO employees (email, name, address, city, state, zip, phone)
			SELECT $1, $2, $3, $4, $5, $6, $7
			WHERE NOT EXISTS (SELECT 1 FROM employees WHERE email = $1)
		`, e.email, e.name, e.address, e.city, e.state, e.zip, e.phone); err != nil {
			log.Fatalf("failed to seed employee %s: %v", e.name, err)
		}
	}
	log.Printf("seeded %d employees", len(employees))
}
