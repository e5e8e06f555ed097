package handler

import (
	"errors"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	"profolio/internal/repository"
	uceducation "profolio/internal/usecase/education"

	"github.com/gofiber/fiber/v3"
)

type EducationHandler struct {
	uc        *uceducation.Service
	sessionMw *middleware.SessionMiddleware
}

type educationRequest struct {
	School    string  `json:"school"`
	Degree    *string `json:"degree"`
	Field     *string `json:"field"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func NewEducationHandler(uc *uceducation.Service, sessionMw *middleware.SessionMiddleware) *EducationHandler {
	return &EducationHandler{uc: uc, sessionMw: sessionMw}
}

func (h *EducationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/education", h.sessionMw.RequireUser())
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *EducationHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	items, err := h.uc.List(c.Context(), usr.ID)
	if err != nil {
		return mapEducationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthEducations(items))
}

func (h *EducationHandler) Create(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req educationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), usr.ID, educationInput(req))
	if err != nil {
		return mapEducationUsecaseError(err)
	}

	return response.Created(c, id)
}

func (h *EducationHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Update(c.Context(), usr.ID, id, educationInput(req)); err != nil {
		return mapEducationUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *EducationHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), usr.ID, id); err != nil {
		return mapEducationUsecaseError(err)
	}

	return response.Deleted(c)
}

func educationInput(req educationRequest) repository.EducationInput {
	return repository.EducationInput{
		School:    req.School,
		Degree:    req.Degree,
		Field:     req.Field,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}

func mapEducationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, uceducation.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Education not found", nil, err)
	case errors.Is(err, uceducation.ErrLimitReached):
		return middleware.NewAppError(fiber.StatusConflict, "Education limit reached", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
