package repository

import (
	"context"
	"errors"
	"time"

	"profolio/internal/database"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	UserID    int64
	FirstName *string
	LastName  *string
	Pronouns  *string
	Headline  *string
	Country   *string
	City      *string
	Bio       *string
	CreatedAt time.Time
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Pronouns  *string
	Headline  *string
	Country   *string
	City      *string
	Bio       *string
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (Profile, error)
	// Update rewrites the whole personal-field set and returns the new row.
	Update(ctx context.Context, userID int64, in ProfileUpdate) (Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `user_id, first_name, last_name, pronouns, headline, country, city, bio, created_at`

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID int64) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) Update(ctx context.Context, userID int64, in ProfileUpdate) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE profiles
		 SET first_name = $1, last_name = $2, pronouns = $3, headline = $4, country = $5, city = $6, bio = $7
		 WHERE user_id = $8
		 RETURNING `+profileColumns,
		in.FirstName, in.LastName, in.Pronouns, in.Headline, in.Country, in.City, in.Bio, userID,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Pronouns, &p.Headline, &p.Country, &p.City, &p.Bio, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	return p, nil
}
