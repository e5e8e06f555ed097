// Package authz resolves a request's session to an authorization outcome:
// anonymous, authenticated user, or authenticated admin. Outcomes are
// computed fresh on every call; nothing is cached across requests.
package authz

import (
	"context"
	"errors"

	"profolio/internal/infrastructure/session"
	"profolio/internal/repository"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)

type Gate struct {
	sessions session.Store
	users    repository.UserRepository
}

func NewGate(sessions session.Store, users repository.UserRepository) *Gate {
	return &Gate{sessions: sessions, users: users}
}

// RequireUser fails closed: no session is ErrNotLoggedIn, a session whose
// user row has since disappeared is ErrUserNotFound.
func (g *Gate) RequireUser(ctx context.Context, sid string) (repository.User, error) {
	if sid == "" {
		return repository.User{}, ErrNotLoggedIn
	}

	userID, err := g.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return repository.User{}, ErrNotLoggedIn
		}
		return repository.User{}, ErrInternal
	}

	usr, err := g.users.FindByID(ctx, userID)
	if err != nil {
		return repository.User{}, ErrInternal
	}
	if usr == nil {
		return repository.User{}, ErrUserNotFound
	}
	return *usr, nil
}

func (g *Gate) RequireAdmin(ctx context.Context, sid string) (repository.User, error) {
	usr, err := g.RequireUser(ctx, sid)
	if err != nil {
		return repository.User{}, err
	}
	if !usr.IsAdmin() {
		return repository.User{}, ErrForbidden
	}
	return usr, nil
}

// OptionalUser returns (nil, nil) for anonymous requests. Storage faults
// still propagate; a broken session store never silently downgrades an
// authenticated viewer to anonymous.
func (g *Gate) OptionalUser(ctx context.Context, sid string) (*repository.User, error) {
	if sid == "" {
		return nil, nil
	}

	userID, err := g.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, nil
		}
		return nil, ErrInternal
	}

	usr, err := g.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return usr, nil
}
