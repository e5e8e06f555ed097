package handler

import (
	"errors"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	ucprofile "profolio/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

// ProfileHandler serves the authenticated user's own profile row.
type ProfileHandler struct {
	uc        *ucprofile.Service
	sessionMw *middleware.SessionMiddleware
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Pronouns  *string `json:"pronouns"`
	Headline  *string `json:"headline"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Bio       *string `json:"bio"`
}

func NewProfileHandler(uc *ucprofile.Service, sessionMw *middleware.SessionMiddleware) *ProfileHandler {
	return &ProfileHandler{uc: uc, sessionMw: sessionMw}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.sessionMw.RequireUser(), h.Get)
	r.Patch("/", h.sessionMw.RequireUser(), h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), usr.ID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), usr.ID, ucprofile.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Pronouns:  req.Pronouns,
		Headline:  req.Headline,
		Country:   req.Country,
		City:      req.City,
		Bio:       req.Bio,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucprofile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
