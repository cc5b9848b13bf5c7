package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/revalidate"
)

// HandleAdminEvents lists all events regardless of state.
func HandleAdminEvents(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	events, err := repo.ListAll(0, 500)
	if err != nil {
		return respondServerError(c, "Could not load events", err)
	}
	total, err := repo.Count()
	if err != nil {
		return respondServerError(c, "Could not count events", err)
	}
	return c.JSON(fiber.Map{"success": true, "total": total, "events": events})
}

// HandleAdminEventUpdate updates editable fields of an event and drops its
// cached pages.
func HandleAdminEventUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid event id")
	}

	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	event, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "Event not found")
		}
		return respondServerError(c, "Could not load event", err)
	}

	var payload struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Location    *string `json:"location"`
		Active      *bool   `json:"active"`
		Approved    *bool   `json:"approved"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Invalid payload")
	}

	if payload.Title != nil {
		event.Title = *payload.Title
	}
	if payload.Description != nil {
		event.Description = *payload.Description
	}
	if payload.Category != nil {
		event.Category = *payload.Category
	}
	if payload.Location != nil {
		event.Location = *payload.Location
	}
	if payload.Active != nil {
		event.Active = *payload.Active
	}
	if payload.Approved != nil {
		event.Approved = *payload.Approved
	}

	if err := validate.Struct(event); err != nil {
		return respondBadRequest(c, "Invalid event fields")
	}
	if err := repo.Update(event); err != nil {
		return respondServerError(c, "Could not update event", err)
	}

	if _, err := dispatcher.Apply(revalidate.Request{
		Kind: revalidate.KindExplicitPath,
		Path: event.DetailPath(),
	}); err != nil {
		return respondServerError(c, "Event updated but revalidation failed", err)
	}

	return c.JSON(fiber.Map{"success": true, "event": event})
}

// HandleAdminEventDelete soft deletes an event and drops its cached pages.
func HandleAdminEventDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid event id")
	}

	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	event, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "Event not found")
		}
		return respondServerError(c, "Could not load event", err)
	}

	if err := repo.Delete(id); err != nil {
		return respondServerError(c, "Could not delete event", err)
	}

	if _, err := dispatcher.Apply(revalidate.Request{
		Kind: revalidate.KindExplicitPath,
		Path: event.DetailPath(),
	}); err != nil {
		return respondServerError(c, "Event deleted but revalidation failed", err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminRegistrations lists attendee registrations for one event.
func HandleAdminRegistrations(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid event id")
	}

	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	registrations, err := repo.ListByEvent(id, 0, 500)
	if err != nil {
		return respondServerError(c, "Could not load registrations", err)
	}
	total, err := repo.CountByEvent(id)
	if err != nil {
		return respondServerError(c, "Could not count registrations", err)
	}

	return c.JSON(fiber.Map{"success": true, "total": total, "registrations": registrations})
}

// HandleAdminClickStats aggregates click analytics per target.
func HandleAdminClickStats(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetClickEventRepository()
	counts, err := repo.CountByTarget()
	if err != nil {
		return respondServerError(c, "Could not load click stats", err)
	}
	recent, err := repo.ListRecent(50)
	if err != nil {
		return respondServerError(c, "Could not load recent clicks", err)
	}
	return c.JSON(fiber.Map{"success": true, "by_target": counts, "recent": recent})
}

// HandleAdminCleanup runs the cleanup sweep on demand.
func HandleAdminCleanup(c *fiber.Ctx) error {
	affected, err := RunCleanupSweep()
	if err != nil {
		return respondServerError(c, "Cleanup sweep failed", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Deactivated %d expired events", affected),
	})
}

// HandleAdminRevalidate invalidates the fixed path set on demand.
func HandleAdminRevalidate(c *fiber.Ctx) error {
	paths, err := RunScheduledRevalidation()
	if err != nil {
		return respondServerError(c, "Revalidation failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "revalidated": true, "paths": paths})
}
