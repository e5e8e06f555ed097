package admin

import (
	"context"
	"errors"
	"strings"

	"profolio/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCannotDeleteSelf = errors.New("cannot delete yourself")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)

type UpdateUserInput struct {
	Username string
	Email    string
	Role     string
}

// Service performs moderation across all users' records. Callers are
// already behind the admin gate; nothing here re-checks roles.
type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) ListUsers(ctx context.Context) ([]repository.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (repository.User, error) {
	usr, err := s.users.FindByID(ctx, id)
	if err != nil {
		return repository.User{}, ErrInternal
	}
	if usr == nil {
		return repository.User{}, ErrUserNotFound
	}
	return *usr, nil
}

// UpdateUser is the only path that writes the role column.
func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) error {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" {
		return ErrInvalidInput
	}
	if in.Role != repository.RoleUser && in.Role != repository.RoleAdmin {
		return ErrInvalidInput
	}

	usr, err := s.users.FindByID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if usr == nil {
		return ErrUserNotFound
	}

	if err := s.users.Update(ctx, usr.ID, username, email, in.Role); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, adminID, id int64) error {
	if id == adminID {
		return ErrCannotDeleteSelf
	}

	usr, err := s.users.FindByID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if usr == nil {
		return ErrUserNotFound
	}

	if err := s.users.Delete(ctx, usr.ID); err != nil {
		return ErrInternal
	}
	return nil
}
