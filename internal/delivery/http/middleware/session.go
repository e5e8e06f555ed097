package middleware

import (
	"errors"
	"time"

	"profolio/internal/pkg/response"
	"profolio/internal/repository"
	"profolio/internal/usecase/authz"

	"github.com/gofiber/fiber/v3"
)

const SessionCookie = "session_id"

const (
	CtxUserKey         = "current_user"
	CtxOptionalUserKey = "optional_user"
	CtxSessionIDKey    = "session_id"
)

type SessionMiddleware struct {
	gate *authz.Gate
	ttl  time.Duration
}

func NewSessionMiddleware(gate *authz.Gate, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{gate: gate, ttl: ttl}
}

// RequireUser resolves the session cookie to a user and stores it in the
// request locals. Anonymous requests stop here.
func (m *SessionMiddleware) RequireUser() fiber.Handler {
	return func(c fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)

		usr, err := m.gate.RequireUser(c.Context(), sid)
		if err != nil {
			return mapGateError(err)
		}

		c.Locals(CtxUserKey, usr)
		c.Locals(CtxSessionIDKey, sid)
		return c.Next()
	}
}

func (m *SessionMiddleware) RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)

		usr, err := m.gate.RequireAdmin(c.Context(), sid)
		if err != nil {
			return mapGateError(err)
		}

		c.Locals(CtxUserKey, usr)
		c.Locals(CtxSessionIDKey, sid)
		return c.Next()
	}
}

// OptionalUser never rejects anonymous requests; it only fails on a broken
// session store.
func (m *SessionMiddleware) OptionalUser() fiber.Handler {
	return func(c fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)

		usr, err := m.gate.OptionalUser(c.Context(), sid)
		if err != nil {
			return mapGateError(err)
		}

		c.Locals(CtxOptionalUserKey, usr)
		return c.Next()
	}
}

// SetSessionCookie writes the opaque session id. HTTP-only by design: the
// id never needs to be readable by scripts.
func (m *SessionMiddleware) SetSessionCookie(c fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (m *SessionMiddleware) ClearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// CurrentUser pulls the user a Require* middleware stored earlier in the
// chain.
func CurrentUser(c fiber.Ctx) (repository.User, bool) {
	usr, ok := c.Locals(CtxUserKey).(repository.User)
	return usr, ok
}

// ViewerUser returns the optional viewer set by OptionalUser; nil means
// anonymous.
func ViewerUser(c fiber.Ctx) *repository.User {
	usr, _ := c.Locals(CtxOptionalUserKey).(*repository.User)
	return usr
}

func SessionID(c fiber.Ctx) string {
	sid, _ := c.Locals(CtxSessionIDKey).(string)
	return sid
}

func mapGateError(err error) error {
	switch {
	case errors.Is(err, authz.ErrNotLoggedIn):
		return NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, err)
	case errors.Is(err, authz.ErrUserNotFound):
		return NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, authz.ErrForbidden):
		return NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	default:
		return NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
