package handler

import (
	"errors"
	"strconv"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	"profolio/internal/repository"
	uccertification "profolio/internal/usecase/certification"

	"github.com/gofiber/fiber/v3"
)

type CertificationHandler struct {
	uc        *uccertification.Service
	sessionMw *middleware.SessionMiddleware
}

type certificationRequest struct {
	Name           string  `json:"name"`
	Organization   string  `json:"organization"`
	IssueDate      *string `json:"issue_date"`
	ExpirationDate *string `json:"expiration_date"`
	CredentialID   *string `json:"credential_id"`
	CredentialURL  *string `json:"credential_url"`
}

func NewCertificationHandler(uc *uccertification.Service, sessionMw *middleware.SessionMiddleware) *CertificationHandler {
	return &CertificationHandler{uc: uc, sessionMw: sessionMw}
}

func (h *CertificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/certification", h.sessionMw.RequireUser())
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *CertificationHandler) List(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	items, err := h.uc.List(c.Context(), usr.ID)
	if err != nil {
		return mapCertificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthCertifications(items))
}

func (h *CertificationHandler) Create(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	var req certificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Create(c.Context(), usr.ID, certificationInput(req))
	if err != nil {
		return mapCertificationUsecaseError(err)
	}

	return response.Created(c, id)
}

func (h *CertificationHandler) Update(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req certificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Update(c.Context(), usr.ID, id, certificationInput(req)); err != nil {
		return mapCertificationUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *CertificationHandler) Delete(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), usr.ID, id); err != nil {
		return mapCertificationUsecaseError(err)
	}

	return response.Deleted(c)
}

func certificationInput(req certificationRequest) repository.CertificationInput {
	return repository.CertificationInput{
		Name:           req.Name,
		Organization:   req.Organization,
		IssueDate:      req.IssueDate,
		ExpirationDate: req.ExpirationDate,
		CredentialID:   req.CredentialID,
		CredentialURL:  req.CredentialURL,
	}
}

// recordID parses the :id path segment shared by every child-record route.
func recordID(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}

func mapCertificationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, uccertification.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Certification not found", nil, err)
	case errors.Is(err, uccertification.ErrLimitReached):
		return middleware.NewAppError(fiber.StatusConflict, "Certification limit reached", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
