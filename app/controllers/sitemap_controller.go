package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/sitemap"
)

// HandleSitemap renders the sitemap XML. Served at /sitemap.xml and its API
// mirror /api/sitemap.xml; both share the same handler and are cached by path.
func HandleSitemap(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	events, err := repo.ListPublic(time.Now(), 0, 1000)
	if err != nil {
		return respondServerError(c, "Could not build sitemap", err)
	}

	body, err := sitemap.Generate(appConfig.BaseURL, events)
	if err != nil {
		return respondServerError(c, "Could not build sitemap", err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(body)
}
