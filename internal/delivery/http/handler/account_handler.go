package handler

import (
	"errors"

	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	ucaccount "profolio/internal/usecase/account"

	"github.com/gofiber/fiber/v3"
)

type AccountHandler struct {
	uc        *ucaccount.Service
	sessionMw *middleware.SessionMiddleware
}

type updateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func NewAccountHandler(uc *ucaccount.Service, sessionMw *middleware.SessionMiddleware) *AccountHandler {
	return &AccountHandler{uc: uc, sessionMw: sessionMw}
}

func (h *AccountHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Patch("/account", h.sessionMw.RequireUser(), h.Update)
	r.Delete("/account", h.sessionMw.RequireUser(), h.Delete)
	r.Patch("/password", h.sessionMw.RequireUser(), h.UpdatePassword)
}

func (h *AccountHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req updateAccountRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Update(c.Context(), usr, ucaccount.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return mapAccountUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *AccountHandler) UpdatePassword(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req updatePasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdatePassword(c.Context(), usr, req.OldPassword, req.NewPassword); err != nil {
		return mapAccountUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *AccountHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	if err := h.uc.Delete(c.Context(), usr.ID, middleware.SessionID(c)); err != nil {
		return mapAccountUsecaseError(err)
	}

	h.sessionMw.ClearSessionCookie(c)
	return response.Deleted(c)
}

func mapAccountUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucaccount.ErrBothFields):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot update both username and email at the same time", nil, err)
	case errors.Is(err, ucaccount.ErrNoFields):
		return middleware.NewAppError(fiber.StatusBadRequest, "Must update either username or email", nil, err)
	case errors.Is(err, ucaccount.ErrValueInUse):
		return middleware.NewAppError(fiber.StatusBadRequest, "Value already in use", nil, err)
	case errors.Is(err, ucaccount.ErrWrongOldPassword):
		return middleware.NewAppError(fiber.StatusBadRequest, "Old password does not match", nil, err)
	case errors.Is(err, ucaccount.ErrSamePassword):
		return middleware.NewAppError(fiber.StatusBadRequest, "New password cannot match old password", nil, err)
	case errors.Is(err, ucaccount.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
