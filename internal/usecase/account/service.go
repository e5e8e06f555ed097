package account

import (
	"context"
	"errors"
	"strings"

	"profolio/internal/infrastructure/session"
	"profolio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBothFields       = errors.New("cannot update both username and email at the same time")
	ErrNoFields         = errors.New("must update either username or email")
	ErrValueInUse       = errors.New("value already in use")
	ErrWrongOldPassword = errors.New("old password does not match")
	ErrSamePassword     = errors.New("new password cannot match old password")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)

type UpdateInput struct {
	Username *string
	Email    *string
}

type Service struct {
	users    repository.UserRepository
	sessions session.Store
}

func NewService(users repository.UserRepository, sessions session.Store) *Service {
	return &Service{users: users, sessions: sessions}
}

// Update changes exactly one of username or email. Supplying both or neither
// is a caller error; uniqueness is re-checked before the single-column write.
func (s *Service) Update(ctx context.Context, usr repository.User, in UpdateInput) error {
	if in.Username != nil && in.Email != nil {
		return ErrBothFields
	}
	if in.Username == nil && in.Email == nil {
		return ErrNoFields
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return ErrInvalidInput
		}
		taken, err := s.users.UsernameExists(ctx, username)
		if err != nil {
			return ErrInternal
		}
		if taken {
			return ErrValueInUse
		}
		if err := s.users.UpdateUsername(ctx, usr.ID, username); err != nil {
			return ErrInternal
		}
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(*in.Email))
	if email == "" {
		return ErrInvalidInput
	}
	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return ErrInternal
	}
	if taken {
		return ErrValueInUse
	}
	if err := s.users.UpdateEmail(ctx, usr.ID, email); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) UpdatePassword(ctx context.Context, usr repository.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(newPassword)) == nil {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}
	if err := s.users.UpdatePassword(ctx, usr.ID, string(hash)); err != nil {
		return ErrInternal
	}
	return nil
}

// Delete removes the user's own account and flushes the session afterward.
// Child records go with the row via the store's cascade rules.
func (s *Service) Delete(ctx context.Context, userID int64, sid string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return ErrInternal
	}
	if sid != "" {
		if err := s.sessions.Delete(ctx, sid); err != nil {
			return ErrInternal
		}
	}
	return nil
}
