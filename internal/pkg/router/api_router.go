package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/codevine/trainhub/app/controllers"
	"github.com/codevine/trainhub/internal/pkg/config"
	"github.com/codevine/trainhub/internal/pkg/env"
	"github.com/codevine/trainhub/internal/pkg/middleware"
	"github.com/codevine/trainhub/internal/pkg/pagecache"
)

// ApiRouter installs the JSON API, the trigger endpoints and the webhooks.
type ApiRouter struct {
	cfg *config.AppConfig
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Storage: redisstorage.New(redisstorage.Config{
			Host: env.GetEnv("CACHE_HOST", "localhost"),
			Port: port,
		}),
	}))

	api.Get("/health", controllers.HandleHealth)
	api.Get("/sitemap.xml", pagecache.Middleware(pagecache.DefaultTTL), controllers.HandleSitemap)

	// Catalog submission and registration
	api.Post("/training-events", controllers.HandleSubmitTrainingEvent)
	api.Post("/training-events/:id/register", controllers.HandleRegister)

	// Payment provider return URL
	api.Get("/payments/verify", controllers.HandleVerifyPayment)

	// Fire-and-forget click analytics
	api.Post("/analytics/click", controllers.HandleClick)

	// Secret-gated trigger endpoints
	api.Post("/revalidate", middleware.BodySecretGate(h.cfg.RevalidateSecret), controllers.HandleRevalidate)
	api.Post("/webhooks/deploy", middleware.BodySecretGate(h.cfg.WebhookSecret), controllers.HandleDeployWebhook)

	cron := api.Group("/cron", middleware.QuerySecretGate(h.cfg.CronSecret))
	cron.Post("/cleanup", controllers.HandleCronCleanup)
	cron.Post("/revalidate", controllers.HandleCronRevalidate)
}

func NewApiRouter(cfg *config.AppConfig) *ApiRouter {
	return &ApiRouter{cfg: cfg}
}
