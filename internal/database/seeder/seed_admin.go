package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"profolio/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder bootstraps the first admin account from ADMIN_USERNAME,
// ADMIN_EMAIL and ADMIN_PASSWORD. Role changes otherwise require an existing
// admin, so a fresh deployment needs this one escape hatch. Skipped when the
// variables are unset; never touches an existing row.
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin" }

func (AdminSeeder) Run(ctx context.Context, db database.DB) error {
	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")

	if username == "" && email == "" && password == "" {
		return nil
	}
	if username == "" || email == "" || len(password) < 8 {
		return fmt.Errorf("admin seed requires ADMIN_USERNAME, ADMIN_EMAIL and an ADMIN_PASSWORD of at least 8 characters")
	}

	var exists bool
	row := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	row = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, 'admin')
		 RETURNING id`,
		username, email, string(hash),
	)
	if err := row.Scan(&id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO profiles (user_id) VALUES ($1)`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
