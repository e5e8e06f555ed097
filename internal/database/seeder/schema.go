package seeder

import (
	"context"
	"fmt"

	"profolio/internal/database"
)

// SchemaSeeder creates the tables the application reads and writes. All
// statements are idempotent; running the seeder against a populated database
// is a no-op.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id    BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		first_name TEXT,
		last_name  TEXT,
		pronouns   TEXT,
		headline   TEXT,
		country    TEXT,
		city       TEXT,
		bio        TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS certifications (
		id              BIGSERIAL PRIMARY KEY,
		user_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		organization    TEXT NOT NULL,
		issue_date      TEXT,
		expiration_date TEXT,
		credential_id   TEXT,
		credential_url  TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS educations (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		school     TEXT NOT NULL,
		degree     TEXT,
		field      TEXT,
		start_date TEXT,
		end_date   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		company     TEXT NOT NULL,
		title       TEXT NOT NULL,
		start_date  TEXT,
		end_date    TEXT,
		exp_type    TEXT,
		description TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_information (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type       TEXT NOT NULL,
		value      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_certifications_user_id ON certifications(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_educations_user_id ON educations(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_user_id ON experiences(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_information_user_id ON contact_information(user_id)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	checks := map[string][]string{
		"users":               {"id", "username", "email", "password_hash", "role", "created_at", "updated_at"},
		"profiles":            {"user_id", "first_name", "last_name", "pronouns", "headline", "country", "city", "bio", "created_at"},
		"certifications":      {"id", "user_id", "name", "organization", "issue_date", "expiration_date", "credential_id", "credential_url", "created_at"},
		"educations":          {"id", "user_id", "school", "degree", "field", "start_date", "end_date", "created_at"},
		"experiences":         {"id", "user_id", "company", "title", "start_date", "end_date", "exp_type", "description", "created_at"},
		"contact_information": {"id", "user_id", "type", "value", "created_at"},
	}
	for table, columns := range checks {
		if err := EnsureTableColumns(ctx, db, table, columns...); err != nil {
			return err
		}
	}
	return nil
}

// EnsureTableColumns verifies a table carries the columns the queries in the
// repository layer expect. Catches a half-migrated database at startup
// instead of at first request.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
