package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/logging"
	"github.com/codevine/trainhub/internal/pkg/revalidate"
)

// RunCleanupSweep deactivates every event that ended before now. Shared by
// the cron trigger endpoint, the admin panel and the in-process scheduler.
func RunCleanupSweep() (int64, error) {
	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	return repo.DeactivateExpired(time.Now())
}

// RunScheduledRevalidation invalidates the fixed path set. Shared by the cron
// trigger endpoint, the admin panel and the in-process scheduler.
func RunScheduledRevalidation() ([]string, error) {
	return dispatcher.Apply(revalidate.Request{Kind: revalidate.KindScheduled})
}

// HandleCronCleanup runs the cleanup sweep. Secret-gated by the router.
func HandleCronCleanup(c *fiber.Ctx) error {
	affected, err := RunCleanupSweep()
	if err != nil {
		return respondServerError(c, "Cleanup sweep failed", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Deactivated %d expired events", affected),
	})
}

// HandleCronRevalidate invalidates the fixed path set. Secret-gated by the router.
func HandleCronRevalidate(c *fiber.Ctx) error {
	if _, err := RunScheduledRevalidation(); err != nil {
		return respondServerError(c, "Revalidation failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "revalidated": true})
}

// HandleRevalidate invalidates an explicit path from the request body.
// Secret-gated by the router.
func HandleRevalidate(c *fiber.Ctx) error {
	var payload struct {
		Path string `json:"path"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Missing path")
	}
	if strings.TrimSpace(payload.Path) == "" {
		return respondBadRequest(c, "Missing path")
	}

	paths, err := dispatcher.Apply(revalidate.Request{
		Kind: revalidate.KindExplicitPath,
		Path: payload.Path,
	})
	if err != nil {
		return respondServerError(c, "Revalidation failed", err)
	}

	logging.Log.Infof("revalidated %d paths for %s", len(paths), payload.Path)
	return c.JSON(fiber.Map{"success": true, "revalidated": true, "path": payload.Path})
}

// HandleDeployWebhook reacts to deployment webhooks. Only the
// deployment-succeeded type triggers invalidation; every other type is
// acknowledged without side effect. Secret-gated by the router.
func HandleDeployWebhook(c *fiber.Ctx) error {
	var payload struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Invalid payload")
	}

	kind, ok := revalidate.KindForWebhookType(payload.Type)
	if !ok {
		logging.Log.Infof("ignoring webhook type %q", payload.Type)
		return c.JSON(fiber.Map{"success": true, "message": "Webhook type ignored"})
	}

	paths, err := dispatcher.Apply(revalidate.Request{Kind: kind})
	if err != nil {
		return respondServerError(c, "Revalidation failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Revalidated %d paths", len(paths)),
	})
}
