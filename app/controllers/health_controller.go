package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/internal/pkg/database"
)

// HandleHealth reports service health. The overall status tracks database
// connectivity only; env-var completeness is reported informationally and
// does not gate the status.
func HandleHealth(c *fiber.Ctx) error {
	missing := appConfig.MissingEnvVars()
	envCheck := fiber.Map{
		"complete": len(missing) == 0,
		"missing":  missing,
	}

	if err := database.Ping(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":       "error",
			"version":      appConfig.Version,
			"database":     "unreachable",
			"envVarsCheck": envCheck,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"status":       "ok",
		"version":      appConfig.Version,
		"database":     "ok",
		"envVarsCheck": envCheck,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
