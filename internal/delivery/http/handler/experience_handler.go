package handler

import (
	"errors"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	"profolio/internal/repository"
	ucexperience "profolio/internal/usecase/experience"

	"github.com/gofiber/fiber/v3"
)

type ExperienceHandler struct {
	uc        *ucexperience.Service
	sessionMw *middleware.SessionMiddleware
}

type experienceRequest struct {
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	ExpType     *string `json:"exp_type"`
	Description *string `json:"description"`
}

func NewExperienceHandler(uc *ucexperience.Service, sessionMw *middleware.SessionMiddleware) *ExperienceHandler {
	return &ExperienceHandler{uc: uc, sessionMw: sessionMw}
}

func (h *ExperienceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/experience", h.sessionMw.RequireUser())
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ExperienceHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	items, err := h.uc.List(c.Context(), usr.ID)
	if err != nil {
		return mapExperienceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthExperiences(items))
}

func (h *ExperienceHandler) Create(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req experienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), usr.ID, experienceInput(req))
	if err != nil {
		return mapExperienceUsecaseError(err)
	}

	return response.Created(c, id)
}

func (h *ExperienceHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req experienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Update(c.Context(), usr.ID, id, experienceInput(req)); err != nil {
		return mapExperienceUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *ExperienceHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), usr.ID, id); err != nil {
		return mapExperienceUsecaseError(err)
	}

	return response.Deleted(c)
}

func experienceInput(req experienceRequest) repository.ExperienceInput {
	return repository.ExperienceInput{
		Company:     req.Company,
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ExpType:     req.ExpType,
		Description: req.Description,
	}
}

func mapExperienceUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucexperience.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Experience not found", nil, err)
	case errors.Is(err, ucexperience.ErrLimitReached):
		return middleware.NewAppError(fiber.StatusConflict, "Experience limit reached", nil, err)
	case errors.Is(err, ucexperience.ErrInvalidType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid experience type", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
