package main

import (
	"fmt"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/codevine/trainhub/app/controllers"
	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/cache"
	"github.com/codevine/trainhub/internal/pkg/config"
	"github.com/codevine/trainhub/internal/pkg/database"
	"github.com/codevine/trainhub/internal/pkg/env"
	"github.com/codevine/trainhub/internal/pkg/logging"
	"github.com/codevine/trainhub/internal/pkg/router"
	"github.com/codevine/trainhub/internal/pkg/scheduler"
)

func main() {
	app, sched := NewApplication()
	defer sched.Stop()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	logging.Log.Fatal(err)
}

func NewApplication() (*fiber.App, *scheduler.MaintenanceScheduler) {
	env.SetupEnvFile()
	logging.Init(env.GetEnv("APP_ENV", "prod"), env.GetEnv("LOG_LEVEL", "info"))

	cfg, err := config.Load()
	if err != nil {
		logging.Log.Fatalf("invalid configuration: %v", err)
	}

	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())
	cache.SetupCache()

	// Find the project root for the static OpenAPI document
	basePaths := []string{
		"./",     // Current directory
		"../../", // From cmd/trainhub to project root
	}
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}
	if basePath == "" {
		panic("Could not find project root directory")
	}

	app := fiber.New(fiber.Config{
		AppName: "trainhub",
	})

	// recovery and logging
	app.Use(recover.New(), fiberlogger.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, cfg)

	// Maintenance co-scheduler; the trigger endpoints stay available for
	// external schedulers.
	sched := scheduler.NewMaintenanceScheduler(
		controllers.RunCleanupSweep,
		controllers.RunScheduledRevalidation,
		env.GetEnv("CRON_SPEC_CLEANUP", "0 3 * * *"),
		env.GetEnv("CRON_SPEC_REVALIDATE", "*/30 * * * *"),
	)
	if err := sched.Start(); err != nil {
		logging.Log.Fatalf("could not start scheduler: %v", err)
	}

	return app, sched
}
