package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/controllers"
	"github.com/codevine/trainhub/internal/pkg/config"
)

// Router installs a set of routes on the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires all route groups. Controllers are initialized first so
// every group can rely on the shared configuration and dispatcher.
func InstallRouter(app *fiber.App, cfg *config.AppConfig) {
	controllers.InitializeControllers(cfg)
	setup(app, NewHttpRouter(), NewApiRouter(cfg), NewAdminRouter(cfg))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
