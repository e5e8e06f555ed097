package profile

import (
	"context"
	"errors"

	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrInternal = errors.New("internal error")
)

// pronounTemplates expands shorthand pronouns on write. Anything not in the
// table passes through unchanged.
var pronounTemplates = map[string]string{
	"he":   "he/him",
	"she":  "she/her",
	"they": "they/them",
}

type UpdateInput struct {
	FirstName *string
	LastName  *string
	Pronouns  *string
	Headline  *string
	Country   *string
	City      *string
	Bio       *string
}

// Aggregate is the assembled profile page: the personal fields plus a
// preview (or, for the owner, the full set) of each child category.
type Aggregate struct {
	Projection         visibility.Projection
	Profile            repository.Profile
	Certifications     []repository.Certification
	Educations         []repository.Education
	Experiences        []repository.Experience
	ContactInformation []repository.ContactInformation
}

type Service struct {
	users          repository.UserRepository
	profiles       repository.ProfileRepository
	certifications repository.CertificationRepository
	educations     repository.EducationRepository
	experiences    repository.ExperienceRepository
	contacts       repository.ContactInformationRepository
}

func NewService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	certifications repository.CertificationRepository,
	educations repository.EducationRepository,
	experiences repository.ExperienceRepository,
	contacts repository.ContactInformationRepository,
) *Service {
	return &Service{
		users:          users,
		profiles:       profiles,
		certifications: certifications,
		educations:     educations,
		experiences:    experiences,
		contacts:       contacts,
	}
}

func (s *Service) Get(ctx context.Context, userID int64) (repository.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{}, ErrNotFound
		}
		return repository.Profile{}, ErrInternal
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID int64, in UpdateInput) (repository.Profile, error) {
	if in.Pronouns != nil {
		if expanded, ok := pronounTemplates[*in.Pronouns]; ok {
			in.Pronouns = &expanded
		}
	}

	p, err := s.profiles.Update(ctx, userID, repository.ProfileUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Pronouns:  in.Pronouns,
		Headline:  in.Headline,
		Country:   in.Country,
		City:      in.City,
		Bio:       in.Bio,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{}, ErrNotFound
		}
		return repository.Profile{}, ErrInternal
	}
	return p, nil
}

// PublicByUsername assembles the profile page for a username. The viewer is
// optional; owners get the full uncapped aggregate, everyone else gets the
// public preview (3 rows per category, 4 for contact information).
func (s *Service) PublicByUsername(ctx context.Context, username string, viewer *repository.User) (Aggregate, error) {
	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Aggregate{}, ErrNotFound
		}
		return Aggregate{}, ErrInternal
	}

	projection := visibility.Resolve(viewer, owner.ID)

	prof, err := s.profiles.FindByUserID(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return Aggregate{}, ErrNotFound
		}
		return Aggregate{}, ErrInternal
	}

	agg := Aggregate{Projection: projection, Profile: prof}

	if projection == visibility.ProjectionOwner {
		if agg.Certifications, err = s.certifications.ListByUser(ctx, owner.ID); err != nil {
			return Aggregate{}, ErrInternal
		}
		if agg.Educations, err = s.educations.ListByUser(ctx, owner.ID); err != nil {
			return Aggregate{}, ErrInternal
		}
		if agg.Experiences, err = s.experiences.ListByUser(ctx, owner.ID); err != nil {
			return Aggregate{}, ErrInternal
		}
		if agg.ContactInformation, err = s.contacts.ListByUser(ctx, owner.ID); err != nil {
			return Aggregate{}, ErrInternal
		}
		return agg, nil
	}

	if agg.Certifications, err = s.certifications.ListPublicByUser(ctx, owner.ID, visibility.AggregatePreviewLimit); err != nil {
		return Aggregate{}, ErrInternal
	}
	if agg.Educations, err = s.educations.ListPublicByUser(ctx, owner.ID, visibility.AggregatePreviewLimit); err != nil {
		return Aggregate{}, ErrInternal
	}
	if agg.Experiences, err = s.experiences.ListPublicByUser(ctx, owner.ID, visibility.AggregatePreviewLimit); err != nil {
		return Aggregate{}, ErrInternal
	}
	if agg.ContactInformation, err = s.contacts.ListPublicByUser(ctx, owner.ID, visibility.AggregateContactPreviewLimit); err != nil {
		return Aggregate{}, ErrInternal
	}
	return agg, nil
}
