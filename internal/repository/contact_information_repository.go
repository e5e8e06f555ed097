package repository

import (
	"context"
	"time"

	"profolio/internal/database"
)

type ContactInformation struct {
	ID        int64
	UserID    int64
	Type      string
	Value     string
	CreatedAt time.Time
}

type ContactInformationInput struct {
	Type  string
	Value string
}

type ContactInformationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]ContactInformation, error)
	ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]ContactInformation, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	// DuplicateExists reports whether the user already has an entry with the
	// same (type, value) pair. excludeID skips one record so updates do not
	// collide with themselves; pass 0 on create.
	DuplicateExists(ctx context.Context, userID int64, in ContactInformationInput, excludeID int64) (bool, error)
	Create(ctx context.Context, userID int64, in ContactInformationInput) (int64, error)
	Update(ctx context.Context, userID, id int64, in ContactInformationInput) error
	Delete(ctx context.Context, userID, id int64) error
	AdminDelete(ctx context.Context, id int64) error
}

type PostgresContactInformationRepository struct {
	db database.DB
}

func NewPostgresContactInformationRepository(db database.DB) *PostgresContactInformationRepository {
	return &PostgresContactInformationRepository{db: db}
}

const contactInformationColumns = `id, user_id, type, value, created_at`

func (r *PostgresContactInformationRepository) ListByUser(ctx context.Context, userID int64) ([]ContactInformation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactInformationColumns+`
		 FROM contact_information
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectContactInformation(rows)
}

func (r *PostgresContactInformationRepository) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]ContactInformation, error) {
	if limit <= 0 {
		return r.ListByUser(ctx, userID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+contactInformationColumns+`
		 FROM contact_information
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectContactInformation(rows)
}

func (r *PostgresContactInformationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_information WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresContactInformationRepository) DuplicateExists(ctx context.Context, userID int64, in ContactInformationInput, excludeID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM contact_information
			WHERE user_id = $1 AND type = $2 AND value = $3 AND id <> $4
		)`,
		userID, in.Type, in.Value, excludeID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresContactInformationRepository) Create(ctx context.Context, userID int64, in ContactInformationInput) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO contact_information (user_id, type, value)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, in.Type, in.Value,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresContactInformationRepository) Update(ctx context.Context, userID, id int64, in ContactInformationInput) error {
	_, err := r.db.Exec(ctx,
		`UPDATE contact_information SET type = $1, value = $2 WHERE id = $3 AND user_id = $4`,
		in.Type, in.Value, id, userID,
	)
	return err
}

func (r *PostgresContactInformationRepository) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contact_information WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *PostgresContactInformationRepository) AdminDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contact_information WHERE id = $1`, id)
	return err
}

func collectContactInformation(rows database.Rows) ([]ContactInformation, error) {
	defer rows.Close()

	out := make([]ContactInformation, 0)
	for rows.Next() {
		var ci ContactInformation
		if err := rows.Scan(&ci.ID, &ci.UserID, &ci.Type, &ci.Value, &ci.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
