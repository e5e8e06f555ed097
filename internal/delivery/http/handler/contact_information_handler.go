package handler

import (
	"errors"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	"profolio/internal/repository"
	uccontactinfo "profolio/internal/usecase/contactinfo"

	"github.com/gofiber/fiber/v3"
)

type ContactInformationHandler struct {
	uc        *uccontactinfo.Service
	sessionMw *middleware.SessionMiddleware
}

type contactInformationRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func NewContactInformationHandler(uc *uccontactinfo.Service, sessionMw *middleware.SessionMiddleware) *ContactInformationHandler {
	return &ContactInformationHandler{uc: uc, sessionMw: sessionMw}
}

func (h *ContactInformationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/contact-information", h.sessionMw.RequireUser())
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ContactInformationHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	items, err := h.uc.List(c.Context(), usr.ID)
	if err != nil {
		return mapContactInformationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthContactInformation(items))
}

func (h *ContactInformationHandler) Create(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req contactInformationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), usr.ID, repository.ContactInformationInput{Type: req.Type, Value: req.Value})
	if err != nil {
		return mapContactInformationUsecaseError(err)
	}

	return response.Created(c, id)
}

func (h *ContactInformationHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req contactInformationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Update(c.Context(), usr.ID, id, repository.ContactInformationInput{Type: req.Type, Value: req.Value}); err != nil {
		return mapContactInformationUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *ContactInformationHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), usr.ID, id); err != nil {
		return mapContactInformationUsecaseError(err)
	}

	return response.Deleted(c)
}

func mapContactInformationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, uccontactinfo.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Contact information not found", nil, err)
	case errors.Is(err, uccontactinfo.ErrLimitReached):
		return middleware.NewAppError(fiber.StatusConflict, "Contact information limit reached", nil, err)
	case errors.Is(err, uccontactinfo.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusConflict, "Contact information already exists", nil, err)
	case errors.Is(err, uccontactinfo.ErrInvalidType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid contact type", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
