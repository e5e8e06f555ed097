package repository

import (
	"context"
	"time"

	"profolio/internal/database"
)

type Education struct {
	ID        int64
	UserID    int64
	School    string
	Degree    *string
	Field     *string
	StartDate *string
	EndDate   *string
	CreatedAt time.Time
}

type EducationInput struct {
	School    string
	Degree    *string
	Field     *string
	StartDate *string
	EndDate   *string
}

type EducationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Education, error)
	ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]Education, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Create(ctx context.Context, userID int64, in EducationInput) (int64, error)
	Update(ctx context.Context, userID, id int64, in EducationInput) error
	Delete(ctx context.Context, userID, id int64) error
	AdminDelete(ctx context.Context, id int64) error
}

type PostgresEducationRepository struct {
	db database.DB
}

func NewPostgresEducationRepository(db database.DB) *PostgresEducationRepository {
	return &PostgresEducationRepository{db: db}
}

const educationColumns = `id, user_id, school, degree, field, start_date, end_date, created_at`

func (r *PostgresEducationRepository) ListByUser(ctx context.Context, userID int64) ([]Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+educationColumns+`
		 FROM educations
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectEducations(rows)
}

func (r *PostgresEducationRepository) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]Education, error) {
	if limit <= 0 {
		return r.ListByUser(ctx, userID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+educationColumns+`
		 FROM educations
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectEducations(rows)
}

func (r *PostgresEducationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM educations WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresEducationRepository) Create(ctx context.Context, userID int64, in EducationInput) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO educations (user_id, school, degree, field, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		userID, in.School, in.Degree, in.Field, in.StartDate, in.EndDate,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresEducationRepository) Update(ctx context.Context, userID, id int64, in EducationInput) error {
	_, err := r.db.Exec(ctx,
		`UPDATE educations
		 SET school = $1, degree = $2, field = $3, start_date = $4, end_date = $5
		 WHERE id = $6 AND user_id = $7`,
		in.School, in.Degree, in.Field, in.StartDate, in.EndDate, id, userID,
	)
	return err
}

func (r *PostgresEducationRepository) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *PostgresEducationRepository) AdminDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	return err
}

func collectEducations(rows database.Rows) ([]Education, error) {
	defer rows.Close()

	out := make([]Education, 0)
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
