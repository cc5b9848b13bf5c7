package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/codevine/trainhub/app/controllers"
	"github.com/codevine/trainhub/internal/pkg/config"
	"github.com/codevine/trainhub/internal/pkg/middleware"
)

// AdminRouter installs the admin and developer panels behind basic auth.
type AdminRouter struct {
	cfg *config.AppConfig
}

func (h AdminRouter) InstallRouter(app *fiber.App) {
	auth := middleware.AdminBasicAuth(h.cfg)

	adminGroup := app.Group("/api/admin", auth)
	adminGroup.Get("/events", controllers.HandleAdminEvents)
	adminGroup.Post("/events/update/:id", controllers.HandleAdminEventUpdate)
	adminGroup.Post("/events/delete/:id", controllers.HandleAdminEventDelete)
	adminGroup.Get("/events/:id/registrations", controllers.HandleAdminRegistrations)
	adminGroup.Get("/clicks", controllers.HandleAdminClickStats)

	// Manual maintenance triggers
	adminGroup.Post("/cleanup", controllers.HandleAdminCleanup)
	adminGroup.Post("/revalidate", controllers.HandleAdminRevalidate)

	devGroup := app.Group("/api/dev", auth)
	devGroup.Get("/monitor", monitor.New())
	devGroup.Get("/cache/keys", controllers.HandleDevCacheKeys)
	devGroup.Get("/cache/value", controllers.HandleDevCacheValue)
	devGroup.Delete("/cache/value", controllers.HandleDevCacheDelete)
}

func NewAdminRouter(cfg *config.AppConfig) *AdminRouter {
	return &AdminRouter{cfg: cfg}
}
