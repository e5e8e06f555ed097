package v1

import (
	"profolio/internal/config"
	"profolio/internal/database"
	"profolio/internal/delivery/http/handler"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/infrastructure/session"
	"profolio/internal/repository"
	ucaccount "profolio/internal/usecase/account"
	ucadmin "profolio/internal/usecase/admin"
	ucauth "profolio/internal/usecase/auth"
	"profolio/internal/usecase/authz"
	uccertification "profolio/internal/usecase/certification"
	uccontactinfo "profolio/internal/usecase/contactinfo"
	uceducation "profolio/internal/usecase/education"
	ucexperience "profolio/internal/usecase/experience"
	ucprofile "profolio/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, sessions session.Store) {
	if r == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	certificationRepo := repository.NewPostgresCertificationRepository(db)
	educationRepo := repository.NewPostgresEducationRepository(db)
	experienceRepo := repository.NewPostgresExperienceRepository(db)
	contactRepo := repository.NewPostgresContactInformationRepository(db)
	guard := repository.NewOwnershipGuard(db)

	gate := authz.NewGate(sessions, userRepo)
	sessionMw := middleware.NewSessionMiddleware(gate, cfg.Session.TTL)

	authUC := ucauth.NewService(userRepo, sessions)
	accountUC := ucaccount.NewService(userRepo, sessions)
	profileUC := ucprofile.NewService(userRepo, profileRepo, certificationRepo, educationRepo, experienceRepo, contactRepo)
	certificationUC := uccertification.NewService(certificationRepo, userRepo, guard)
	educationUC := uceducation.NewService(educationRepo, userRepo, guard)
	experienceUC := ucexperience.NewService(experienceRepo, userRepo, guard)
	contactUC := uccontactinfo.NewService(contactRepo, userRepo, guard)
	adminUC := ucadmin.NewService(userRepo)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC, sessionMw).RegisterRoutes(authGroup)
	handler.NewAccountHandler(accountUC, sessionMw).RegisterRoutes(authGroup)
	handler.NewAdminHandler(adminUC, certificationUC, educationUC, experienceUC, contactUC, sessionMw).RegisterRoutes(authGroup)

	ownProfile := authGroup.Group("/profile")
	handler.NewProfileHandler(profileUC, sessionMw).RegisterRoutes(ownProfile)
	handler.NewCertificationHandler(certificationUC, sessionMw).RegisterRoutes(ownProfile)
	handler.NewEducationHandler(educationUC, sessionMw).RegisterRoutes(ownProfile)
	handler.NewExperienceHandler(experienceUC, sessionMw).RegisterRoutes(ownProfile)
	handler.NewContactInformationHandler(contactUC, sessionMw).RegisterRoutes(ownProfile)

	handler.NewPublicProfileHandler(profileUC, certificationUC, educationUC, experienceUC, contactUC, sessionMw).RegisterRoutes(r)
}
