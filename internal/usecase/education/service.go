package education

import (
	"context"
	"errors"

	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

var (
	ErrNotFound     = errors.New("education not found")
	ErrLimitReached = errors.New("education limit reached")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	educations repository.EducationRepository
	users      repository.UserRepository
	guard      *repository.OwnershipGuard
}

func NewService(educations repository.EducationRepository, users repository.UserRepository, guard *repository.OwnershipGuard) *Service {
	return &Service{educations: educations, users: users, guard: guard}
}

func (s *Service) List(ctx context.Context, userID int64) ([]repository.Education, error) {
	items, err := s.educations.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (s *Service) PublicByUsername(ctx context.Context, username string, viewer *repository.User) (visibility.Projection, []repository.Education, error) {
	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return visibility.ProjectionPublic, nil, ErrNotFound
		}
		return visibility.ProjectionPublic, nil, ErrInternal
	}

	projection := visibility.Resolve(viewer, owner.ID)

	var items []repository.Education
	if projection == visibility.ProjectionOwner {
		items, err = s.educations.ListByUser(ctx, owner.ID)
	} else {
		items, err = s.educations.ListPublicByUser(ctx, owner.ID, 0)
	}
	if err != nil {
		return projection, nil, ErrInternal
	}
	return projection, items, nil
}

func (s *Service) Create(ctx context.Context, userID int64, in repository.EducationInput) (int64, error) {
	count, err := s.educations.CountByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	if count >= visibility.MaxRecordsPerCategory {
		return 0, ErrLimitReached
	}

	id, err := s.educations.Create(ctx, userID, in)
	if err != nil {
		return 0, ErrInternal
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, in repository.EducationInput) error {
	owns, err := s.guard.Owns(ctx, repository.TableEducations, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.educations.Update(ctx, userID, id, in); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	owns, err := s.guard.Owns(ctx, repository.TableEducations, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.educations.Delete(ctx, userID, id); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	exists, err := s.guard.Exists(ctx, repository.TableEducations, id)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.educations.AdminDelete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}
