package app

import (
	"fmt"
	"strings"

	"profolio/internal/config"
	"profolio/internal/delivery/http/middleware"
	"profolio/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

type App struct {
	Fiber *fiber.App
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{})

	registerGlobalMiddleware(f, container.Config)
	routes.NewRegistry(container.Config, container.DB, container.Sessions).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config) {
	if app == nil {
		return
	}

	app.Use(requestid.New())

	// Credentials are only allowed against an explicit origin; fiber refuses
	// AllowCredentials together with its wildcard default.
	corsCfg := cors.Config{}
	if origin := strings.TrimSpace(cfg.App.CORSOrigin); origin != "" {
		corsCfg.AllowOrigins = []string{origin}
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
