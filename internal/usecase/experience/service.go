package experience

import (
	"context"
	"errors"

	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

var (
	ErrNotFound     = errors.New("experience not found")
	ErrLimitReached = errors.New("experience limit reached")
	ErrInvalidType  = errors.New("invalid experience type")
	ErrInternal     = errors.New("internal error")
)

// Employment types a position can carry. An absent or empty type is valid;
// anything else must match the set.
var validTypes = map[string]struct{}{
	"Full Time":      {},
	"Part Time":      {},
	"Self Employed":  {},
	"Freelance":      {},
	"Contract":       {},
	"Internship":     {},
	"Volunteering":   {},
	"Seasonal":       {},
	"Apprenticeship": {},
	"Other":          {},
}

// ValidType reports whether the given exp_type is acceptable. The empty
// string is allowed on purpose: the field is optional and the UI sends ""
// for "unset".
func ValidType(t *string) bool {
	if t == nil || *t == "" {
		return true
	}
	_, ok := validTypes[*t]
	return ok
}

type Service struct {
	experiences repository.ExperienceRepository
	users       repository.UserRepository
	guard       *repository.OwnershipGuard
}

func NewService(experiences repository.ExperienceRepository, users repository.UserRepository, guard *repository.OwnershipGuard) *Service {
	return &Service{experiences: experiences, users: users, guard: guard}
}

func (s *Service) List(ctx context.Context, userID int64) ([]repository.Experience, error) {
	items, err := s.experiences.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (s *Service) PublicByUsername(ctx context.Context, username string, viewer *repository.User) (visibility.Projection, []repository.Experience, error) {
	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return visibility.ProjectionPublic, nil, ErrNotFound
		}
		return visibility.ProjectionPublic, nil, ErrInternal
	}

	projection := visibility.Resolve(viewer, owner.ID)

	var items []repository.Experience
	if projection == visibility.ProjectionOwner {
		items, err = s.experiences.ListByUser(ctx, owner.ID)
	} else {
		items, err = s.experiences.ListPublicByUser(ctx, owner.ID, 0)
	}
	if err != nil {
		return projection, nil, ErrInternal
	}
	return projection, items, nil
}

func (s *Service) Create(ctx context.Context, userID int64, in repository.ExperienceInput) (int64, error) {
	if !ValidType(in.ExpType) {
		return 0, ErrInvalidType
	}

	count, err := s.experiences.CountByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	if count >= visibility.MaxRecordsPerCategory {
		return 0, ErrLimitReached
	}

	id, err := s.experiences.Create(ctx, userID, in)
	if err != nil {
		return 0, ErrInternal
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, in repository.ExperienceInput) error {
	if !ValidType(in.ExpType) {
		return ErrInvalidType
	}

	owns, err := s.guard.Owns(ctx, repository.TableExperiences, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.experiences.Update(ctx, userID, id, in); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	owns, err := s.guard.Owns(ctx, repository.TableExperiences, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.experiences.Delete(ctx, userID, id); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	exists, err := s.guard.Exists(ctx, repository.TableExperiences, id)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.experiences.AdminDelete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}
