package dto

import (
	"time"

	"profolio/internal/repository"
)

// ProfileResponse is the owner's view of their own profile row.
type ProfileResponse struct {
	UserID    int64     `json:"user_id"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Pronouns  *string   `json:"pronouns"`
	Headline  *string   `json:"headline"`
	Country   *string   `json:"country"`
	City      *string   `json:"city"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicProfileResponse drops the foreign key and timestamps.
type PublicProfileResponse struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Pronouns  *string `json:"pronouns"`
	Headline  *string `json:"headline"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Bio       *string `json:"bio"`
}

// PublicProfileAggregate is the assembled profile page. The payloads carry
// ids and timestamps for the owner and omit them for everyone else, so they
// stay untyped here.
type PublicProfileAggregate struct {
	Profile            any `json:"profile"`
	Certifications     any `json:"certification"`
	Educations         any `json:"education"`
	Experiences        any `json:"experience"`
	ContactInformation any `json:"contact_information"`
}

func NewProfileResponse(p repository.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Pronouns:  p.Pronouns,
		Headline:  p.Headline,
		Country:   p.Country,
		City:      p.City,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}

func NewPublicProfileResponse(p repository.Profile) PublicProfileResponse {
	return PublicProfileResponse{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Pronouns:  p.Pronouns,
		Headline:  p.Headline,
		Country:   p.Country,
		City:      p.City,
		Bio:       p.Bio,
	}
}
