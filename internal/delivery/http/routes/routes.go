package routes

import (
	"profolio/internal/config"
	"profolio/internal/database"
	"profolio/internal/delivery/http/handler"
	v1 "profolio/internal/delivery/http/routes/v1"
	"profolio/internal/infrastructure/session"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	sessions session.Store
}

func NewRegistry(cfg config.Config, db database.DB, sessions session.Store) *Registry {
	return &Registry{cfg: cfg, db: db, sessions: sessions}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.sessions)
}
