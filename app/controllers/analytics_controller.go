package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/models"
	"github.com/codevine/trainhub/app/repository"
)

// HandleClick records a single click event. The client fires this without
// awaiting the outcome; failures are logged and never shown to end users.
func HandleClick(c *fiber.Ctx) error {
	var payload struct {
		EventID string `json:"eventId"`
		Target  string `json:"target"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Missing eventId or target")
	}
	if strings.TrimSpace(payload.EventID) == "" || strings.TrimSpace(payload.Target) == "" {
		return respondBadRequest(c, "Missing eventId or target")
	}

	click := models.ClickEvent{
		EventID: payload.EventID,
		Target:  payload.Target,
	}
	if err := validate.Struct(&click); err != nil {
		return respondBadRequest(c, "Invalid eventId or target")
	}

	repo := repository.GetGlobalFactory().GetClickEventRepository()
	if err := repo.Create(&click); err != nil {
		return respondServerError(c, "Could not record click", err)
	}

	return c.JSON(fiber.Map{"success": true})
}
