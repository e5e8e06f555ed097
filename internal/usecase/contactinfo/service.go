package contactinfo

import (
	"context"
	"errors"

	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

var (
	ErrNotFound     = errors.New("contact information not found")
	ErrLimitReached = errors.New("contact information limit reached")
	ErrDuplicate    = errors.New("contact information already exists")
	ErrInvalidType  = errors.New("invalid contact type")
	ErrInternal     = errors.New("internal error")
)

var validTypes = map[string]struct{}{
	"email":     {},
	"phone":     {},
	"website":   {},
	"linkedin":  {},
	"github":    {},
	"twitter":   {},
	"facebook":  {},
	"instagram": {},
}

func ValidType(t string) bool {
	_, ok := validTypes[t]
	return ok
}

type Service struct {
	contacts repository.ContactInformationRepository
	users    repository.UserRepository
	guard    *repository.OwnershipGuard
}

func NewService(contacts repository.ContactInformationRepository, users repository.UserRepository, guard *repository.OwnershipGuard) *Service {
	return &Service{contacts: contacts, users: users, guard: guard}
}

func (s *Service) List(ctx context.Context, userID int64) ([]repository.ContactInformation, error) {
	items, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (s *Service) PublicByUsername(ctx context.Context, username string, viewer *repository.User) (visibility.Projection, []repository.ContactInformation, error) {
	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return visibility.ProjectionPublic, nil, ErrNotFound
		}
		return visibility.ProjectionPublic, nil, ErrInternal
	}

	projection := visibility.Resolve(viewer, owner.ID)

	var items []repository.ContactInformation
	if projection == visibility.ProjectionOwner {
		items, err = s.contacts.ListByUser(ctx, owner.ID)
	} else {
		items, err = s.contacts.ListPublicByUser(ctx, owner.ID, 0)
	}
	if err != nil {
		return projection, nil, ErrInternal
	}
	return projection, items, nil
}

// Create enforces the per-user cap, the type enumeration and the
// (type, value) uniqueness, in that order.
func (s *Service) Create(ctx context.Context, userID int64, in repository.ContactInformationInput) (int64, error) {
	count, err := s.contacts.CountByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	if count >= visibility.MaxRecordsPerCategory {
		return 0, ErrLimitReached
	}

	if !ValidType(in.Type) {
		return 0, ErrInvalidType
	}

	dup, err := s.contacts.DuplicateExists(ctx, userID, in, 0)
	if err != nil {
		return 0, ErrInternal
	}
	if dup {
		return 0, ErrDuplicate
	}

	id, err := s.contacts.Create(ctx, userID, in)
	if err != nil {
		return 0, ErrInternal
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, in repository.ContactInformationInput) error {
	owns, err := s.guard.Owns(ctx, repository.TableContactInformation, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if !ValidType(in.Type) {
		return ErrInvalidType
	}

	dup, err := s.contacts.DuplicateExists(ctx, userID, in, id)
	if err != nil {
		return ErrInternal
	}
	if dup {
		return ErrDuplicate
	}

	if err := s.contacts.Update(ctx, userID, id, in); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	owns, err := s.guard.Owns(ctx, repository.TableContactInformation, id, userID)
	if err != nil {
		return ErrInternal
	}
	if !owns {
		return ErrNotFound
	}

	if err := s.contacts.Delete(ctx, userID, id); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	exists, err := s.guard.Exists(ctx, repository.TableContactInformation, id)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.contacts.AdminDelete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}
