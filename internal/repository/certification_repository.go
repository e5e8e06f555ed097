package repository

import (
	"context"
	"time"

	"profolio/internal/database"
)

type Certification struct {
	ID             int64
	UserID         int64
	Name           string
	Organization   string
	IssueDate      *string
	ExpirationDate *string
	CredentialID   *string
	CredentialURL  *string
	CreatedAt      time.Time
}

type CertificationInput struct {
	Name           string
	Organization   string
	IssueDate      *string
	ExpirationDate *string
	CredentialID   *string
	CredentialURL  *string
}

type CertificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Certification, error)
	// ListPublicByUser caps the result at limit rows when limit > 0.
	ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]Certification, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Create(ctx context.Context, userID int64, in CertificationInput) (int64, error)
	Update(ctx context.Context, userID, id int64, in CertificationInput) error
	Delete(ctx context.Context, userID, id int64) error
	AdminDelete(ctx context.Context, id int64) error
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

const certificationColumns = `id, user_id, name, organization, issue_date, expiration_date, credential_id, credential_url, created_at`

func (r *PostgresCertificationRepository) ListByUser(ctx context.Context, userID int64) ([]Certification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+certificationColumns+`
		 FROM certifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectCertifications(rows)
}

func (r *PostgresCertificationRepository) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]Certification, error) {
	// LIMIT -1 means no limit in Postgres' ALL sense via NULL; normalize here.
	if limit <= 0 {
		return r.ListByUser(ctx, userID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+certificationColumns+`
		 FROM certifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectCertifications(rows)
}

func (r *PostgresCertificationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM certifications WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresCertificationRepository) Create(ctx context.Context, userID int64, in CertificationInput) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO certifications (user_id, name, organization, issue_date, expiration_date, credential_id, credential_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		userID, in.Name, in.Organization, in.IssueDate, in.ExpirationDate, in.CredentialID, in.CredentialURL,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresCertificationRepository) Update(ctx context.Context, userID, id int64, in CertificationInput) error {
	_, err := r.db.Exec(ctx,
		`UPDATE certifications
		 SET name = $1, organization = $2, issue_date = $3, expiration_date = $4, credential_id = $5, credential_url = $6
		 WHERE id = $7 AND user_id = $8`,
		in.Name, in.Organization, in.IssueDate, in.ExpirationDate, in.CredentialID, in.CredentialURL, id, userID,
	)
	return err
}

func (r *PostgresCertificationRepository) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *PostgresCertificationRepository) AdminDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	return err
}

func collectCertifications(rows database.Rows) ([]Certification, error) {
	defer rows.Close()

	out := make([]Certification, 0)
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Organization, &c.IssueDate, &c.ExpirationDate, &c.CredentialID, &c.CredentialURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
