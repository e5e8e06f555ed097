package handler

import (
	"errors"

	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	ucadmin "profolio/internal/usecase/admin"
	uccertification "profolio/internal/usecase/certification"
	uccontactinfo "profolio/internal/usecase/contactinfo"
	uceducation "profolio/internal/usecase/education"
	ucexperience "profolio/internal/usecase/experience"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler exposes the moderation surface. Every route sits behind
// RequireAdmin, so handlers can assume an admin is in the locals.
type AdminHandler struct {
	uc             *ucadmin.Service
	certifications *uccertification.Service
	educations     *uceducation.Service
	experiences    *ucexperience.Service
	contacts       *uccontactinfo.Service
	sessionMw      *middleware.SessionMiddleware
}

type adminUpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func NewAdminHandler(
	uc *ucadmin.Service,
	certifications *uccertification.Service,
	educations *uceducation.Service,
	experiences *ucexperience.Service,
	contacts *uccontactinfo.Service,
	sessionMw *middleware.SessionMiddleware,
) *AdminHandler {
	return &AdminHandler{
		uc:             uc,
		certifications: certifications,
		educations:     educations,
		experiences:    experiences,
		contacts:       contacts,
		sessionMw:      sessionMw,
	}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/admin", h.sessionMw.RequireAdmin())
	grp.Get("/users", h.ListUsers)
	grp.Get("/users/:id", h.GetUser)
	grp.Patch("/users/:id", h.UpdateUser)
	grp.Delete("/users/:id", h.DeleteUser)
	grp.Delete("/certification/:id", h.DeleteCertification)
	grp.Delete("/education/:id", h.DeleteEducation)
	grp.Delete("/experience/:id", h.DeleteExperience)
	grp.Delete("/contact-information/:id", h.DeleteContactInformation)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponses(users))
}

func (h *AdminHandler) GetUser(c fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *AdminHandler) UpdateUser(c fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req adminUpdateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := ucadmin.UpdateUserInput{Username: req.Username, Email: req.Email, Role: req.Role}
	if err := h.uc.UpdateUser(c.Context(), id, in); err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Updated(c)
}

func (h *AdminHandler) DeleteUser(c fiber.Ctx) error {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not logged in", nil, nil)
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Context(), admin.ID, id); err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Deleted(c)
}

func (h *AdminHandler) DeleteCertification(c fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.certifications.AdminDelete(c.Context(), id); err != nil {
		return mapCertificationUsecaseError(err)
	}

	return response.Deleted(c)
}

func (h *AdminHandler) DeleteEducation(c fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.educations.AdminDelete(c.Context(), id); err != nil {
		return mapEducationUsecaseError(err)
	}

	return response.Deleted(c)
}

func (h *AdminHandler) DeleteExperience(c fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.experiences.AdminDelete(c.Context(), id); err != nil {
		return mapExperienceUsecaseError(err)
	}

	return response.Deleted(c)
}

func (h *AdminHandler) DeleteContactInformation(c fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.contacts.AdminDelete(c.Context(), id); err != nil {
		return mapContactInformationUsecaseError(err)
	}

	return response.Deleted(c)
}

func mapAdminUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucadmin.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucadmin.ErrCannotDeleteSelf):
		return middleware.NewAppError(fiber.StatusForbidden, "Cannot delete yourself", nil, err)
	case errors.Is(err, ucadmin.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
