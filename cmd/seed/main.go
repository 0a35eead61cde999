package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/21musie/Caxora/config"
	"github.com/21musie/Caxora/internal/domain/entity"
	"github.com/21musie/Caxora/pkg/helpers"
)

// Seeds the bootstrap administrator account. The fixed credentials are for
// first boot only and must be rotated before production use.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "admin"
	email := "admin@caxora.com"
	password := "admin123"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, username, email, password_hash, role, is_active, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, now(), now())
		ON CONFLICT (lower(username)) DO UPDATE SET updated_at = now()
		RETURNING id
	`, uuid.NewString(), username, email, hash, string(entity.RoleAdmin), "System Administrator").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s username=%s (rotate the default password)\n", id, username)
}
