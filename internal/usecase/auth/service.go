package auth

import (
	"context"
	"errors"
	"strings"

	"profolio/internal/infrastructure/session"
	"profolio/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoSession          = errors.New("no session")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type Service struct {
	users    repository.UserRepository
	sessions session.Store
}

func NewService(users repository.UserRepository, sessions session.Store) *Service {
	return &Service{users: users, sessions: sessions}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" {
		return ErrInvalidInput
	}

	usernameTaken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return ErrInternal
	}
	emailTaken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return ErrInternal
	}
	if usernameTaken || emailTaken {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}

	// User and profile rows are created in one transaction; see the
	// repository. A half-registered account is not a state this system has.
	if _, err := s.users.CreateWithProfile(ctx, username, email, string(hash)); err != nil {
		return ErrInternal
	}
	return nil
}

// Login accepts a username or an email in the identifier field, verifies the
// password and opens a session. The caller gets the sanitized user plus the
// opaque session id for the cookie.
func (s *Service) Login(ctx context.Context, identifier, password string) (repository.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return repository.User{}, "", ErrInvalidCredentials
	}

	usr, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return repository.User{}, "", ErrInternal
	}
	if usr == nil {
		return repository.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return repository.User{}, "", ErrInvalidCredentials
	}

	sid := uuid.NewString()
	if err := s.sessions.Set(ctx, sid, usr.ID); err != nil {
		return repository.User{}, "", ErrInternal
	}

	return sanitizeUser(*usr), sid, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return ErrNoSession
	}
	if _, err := s.sessions.Get(ctx, sid); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return ErrNoSession
		}
		return ErrInternal
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return ErrInternal
	}
	return nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func sanitizeUser(u repository.User) repository.User {
	u.PasswordHash = ""
	return u
}
