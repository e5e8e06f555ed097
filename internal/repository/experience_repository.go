package repository

import (
	"context"
	"time"

	"profolio/internal/database"
)

type Experience struct {
	ID          int64
	UserID      int64
	Company     string
	Title       string
	StartDate   *string
	EndDate     *string
	ExpType     *string
	Description *string
	CreatedAt   time.Time
}

type ExperienceInput struct {
	Company     string
	Title       string
	StartDate   *string
	EndDate     *string
	ExpType     *string
	Description *string
}

type ExperienceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Experience, error)
	ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]Experience, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Create(ctx context.Context, userID int64, in ExperienceInput) (int64, error)
	Update(ctx context.Context, userID, id int64, in ExperienceInput) error
	Delete(ctx context.Context, userID, id int64) error
	AdminDelete(ctx context.Context, id int64) error
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

const experienceColumns = `id, user_id, company, title, start_date, end_date, exp_type, description, created_at`

func (r *PostgresExperienceRepository) ListByUser(ctx context.Context, userID int64) ([]Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+experienceColumns+`
		 FROM experiences
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectExperiences(rows)
}

func (r *PostgresExperienceRepository) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]Experience, error) {
	if limit <= 0 {
		return r.ListByUser(ctx, userID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+experienceColumns+`
		 FROM experiences
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectExperiences(rows)
}

func (r *PostgresExperienceRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM experiences WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresExperienceRepository) Create(ctx context.Context, userID int64, in ExperienceInput) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO experiences (user_id, company, title, start_date, end_date, exp_type, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		userID, in.Company, in.Title, in.StartDate, in.EndDate, in.ExpType, in.Description,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresExperienceRepository) Update(ctx context.Context, userID, id int64, in ExperienceInput) error {
	_, err := r.db.Exec(ctx,
		`UPDATE experiences
		 SET company = $1, title = $2, start_date = $3, end_date = $4, exp_type = $5, description = $6
		 WHERE id = $7 AND user_id = $8`,
		in.Company, in.Title, in.StartDate, in.EndDate, in.ExpType, in.Description, id, userID,
	)
	return err
}

func (r *PostgresExperienceRepository) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *PostgresExperienceRepository) AdminDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	return err
}

func collectExperiences(rows database.Rows) ([]Experience, error) {
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Company, &e.Title, &e.StartDate, &e.EndDate, &e.ExpType, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
