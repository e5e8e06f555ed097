package handler

import (
	"errors"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	ucauth "profolio/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc        *ucauth.Service
	sessionMw *middleware.SessionMiddleware
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	// Username carries either a username or an email.
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(uc *ucauth.Service, sessionMw *middleware.SessionMiddleware) *AuthHandler {
	return &AuthHandler{uc: uc, sessionMw: sessionMw}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.sessionMw.RequireUser(), h.Me)
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Get("/logout", h.Logout)
}

// Me returns the sanitized current user; the RequireUser middleware already
// rejected anonymous requests.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, sid, err := h.uc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	h.sessionMw.SetSessionCookie(c, sid)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, nil)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sid := c.Cookies(middleware.SessionCookie)

	if err := h.uc.Logout(c.Context(), sid); err != nil {
		if errors.Is(err, ucauth.ErrNoSession) {
			return c.SendStatus(fiber.StatusNotModified)
		}
		return mapAuthUsecaseError(err)
	}

	h.sessionMw.ClearSessionCookie(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrUserExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "User already exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
