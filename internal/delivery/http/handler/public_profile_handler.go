package handler

import (
	"profolio/internal/delivery/http/dto"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/pkg/response"
	uccertification "profolio/internal/usecase/certification"
	uccontactinfo "profolio/internal/usecase/contactinfo"
	uceducation "profolio/internal/usecase/education"
	ucexperience "profolio/internal/usecase/experience"
	ucprofile "profolio/internal/usecase/profile"
	"profolio/internal/usecase/visibility"

	"github.com/gofiber/fiber/v3"
)

// PublicProfileHandler serves the profile pages keyed by username. Routes are
// reachable anonymously; a cookie upgrades the owner to their full view.
type PublicProfileHandler struct {
	profiles       *ucprofile.Service
	certifications *uccertification.Service
	educations     *uceducation.Service
	experiences    *ucexperience.Service
	contacts       *uccontactinfo.Service
	sessionMw      *middleware.SessionMiddleware
}

func NewPublicProfileHandler(
	profiles *ucprofile.Service,
	certifications *uccertification.Service,
	educations *uceducation.Service,
	experiences *ucexperience.Service,
	contacts *uccontactinfo.Service,
	sessionMw *middleware.SessionMiddleware,
) *PublicProfileHandler {
	return &PublicProfileHandler{
		profiles:       profiles,
		certifications: certifications,
		educations:     educations,
		experiences:    experiences,
		contacts:       contacts,
		sessionMw:      sessionMw,
	}
}

func (h *PublicProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/profile/:username", h.sessionMw.OptionalUser())
	grp.Get("/", h.Aggregate)
	grp.Get("/certifications", h.Certifications)
	grp.Get("/educations", h.Educations)
	grp.Get("/experiences", h.Experiences)
	grp.Get("/contact-information", h.ContactInformation)
}

func (h *PublicProfileHandler) Aggregate(c fiber.Ctx) error {
	agg, err := h.profiles.PublicByUsername(c.Context(), c.Params("username"), middleware.ViewerUser(c))
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	var out dto.PublicProfileAggregate
	if agg.Projection == visibility.ProjectionOwner {
		out.Profile = dto.NewProfileResponse(agg.Profile)
		out.Certifications = dto.NewAuthCertifications(agg.Certifications)
		out.Educations = dto.NewAuthEducations(agg.Educations)
		out.Experiences = dto.NewAuthExperiences(agg.Experiences)
		out.ContactInformation = dto.NewAuthContactInformation(agg.ContactInformation)
	} else {
		out.Profile = dto.NewPublicProfileResponse(agg.Profile)
		out.Certifications = dto.NewPublicCertifications(agg.Certifications)
		out.Educations = dto.NewPublicEducations(agg.Educations)
		out.Experiences = dto.NewPublicExperiences(agg.Experiences)
		out.ContactInformation = dto.NewPublicContactInformation(agg.ContactInformation)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PublicProfileHandler) Certifications(c fiber.Ctx) error {
	projection, items, err := h.certifications.PublicByUsername(c.Context(), c.Params("username"), middleware.ViewerUser(c))
	if err != nil {
		return mapCertificationUsecaseError(err)
	}

	if projection == visibility.ProjectionOwner {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthCertifications(items))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPublicCertifications(items))
}

func (h *PublicProfileHandler) Educations(c fiber.Ctx) error {
	projection, items, err := h.educations.PublicByUsername(c.Context(), c.Params("username"), middleware.ViewerUser(c))
	if err != nil {
		return mapEducationUsecaseError(err)
	}

	if projection == visibility.ProjectionOwner {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthEducations(items))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPublicEducations(items))
}

func (h *PublicProfileHandler) Experiences(c fiber.Ctx) error {
	projection, items, err := h.experiences.PublicByUsername(c.Context(), c.Params("username"), middleware.ViewerUser(c))
	if err != nil {
		return mapExperienceUsecaseError(err)
	}

	if projection == visibility.ProjectionOwner {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthExperiences(items))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPublicExperiences(items))
}

func (h *PublicProfileHandler) ContactInformation(c fiber.Ctx) error {
	projection, items, err := h.contacts.PublicByUsername(c.Context(), c.Params("username"), middleware.ViewerUser(c))
	if err != nil {
		return mapContactInformationUsecaseError(err)
	}

	if projection == visibility.ProjectionOwner {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthContactInformation(items))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPublicContactInformation(items))
}
