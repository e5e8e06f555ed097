package certification

import (
	"context"
	"errors"

	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

var (
	// ErrNotFound covers both a missing record and a record owned by someone
	// else; the two cases are deliberately indistinguishable.
	ErrNotFound     = errors.New("certification not found")
	ErrLimitReached = errors.New("certification limit reached")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	certifications repository.CertificationRepository
	users          repository.UserRepository
	guard          *repository.OwnershipGuard
}

func NewService(certifications repository.CertificationRepository, users repository.UserRepository, guard *repository.OwnershipGuard) *Service {
	return &Service{certifications: certifications, users: users, guard: guard}
}

func (s *Service) List(ctx context.Context, userID int64) ([]repository.Certification, error) {
	items, err := s.certifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// PublicByUsername serves the dedicated public endpoint: full list, with the
// owner projection when the optional viewer is the profile owner.
func (s *Service) PublicByUsername(ctx context.Context, username string, viewer *repository.User) (visibility.Projection, []repository.Certification, error) {
	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return visibility.ProjectionPublic, nil, ErrNotFound
		}
		return visibility.ProjectionPublic, nil, ErrInternal
	}

	projection := visibility.Resolve(viewer, owner.ID)

	var items []repository.Certification
	if projection == visibility.ProjectionOwner {
		items, err = s.certifications.ListByUser(ctx, owner.ID)
	} else {
		items, err = s.certifications.ListPublicByUser(ctx, owner.ID, 0)
	}
	if err != nil {
		return projection, nil, ErrInternal
	}
	return projection, items, nil
}

func (s *Service) Create(ctx context.Context, userID int64, in repository.CertificationInput) (int64, error) {
	count, err := s.certifications.CountByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	if count >= visibility.MaxRecordsPerCategory {
		return 0, ErrLimitReached
	}

	id, err := s.certifications.Create(ctx, userID, in)
	if err != nil {
		return 0, ErrInternal
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, in repository.CertificationInput) error {
	owns, err := s.guard.Owns(ctx, repository.TableCertifications, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.certifications.Update(ctx, userID, id, in); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	owns, err := s.guard.Owns(ctx, repository.TableCertifications, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.certifications.Delete(ctx, userID, id); err != nil {
		return ErrInternal
	}
	return nil
}

// AdminDelete bypasses ownership; the caller is already behind the admin
// gate.
func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	exists, err := s.guard.Exists(ctx, repository.TableCertifications, id)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.certifications.AdminDelete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}
