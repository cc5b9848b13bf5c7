package controllers

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevine/trainhub/app/models"
	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/env"
	"github.com/codevine/trainhub/internal/pkg/paystack"
)

const defaultPageSize = 100

// frontendCategory is the one category that gets its own pre-rendered
// listing page.
const frontendCategory = "frontend"

// HandleTrainingEventsIndex serves the public catalog listing.
func HandleTrainingEventsIndex(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	events, err := repo.ListPublic(time.Now(), 0, defaultPageSize)
	if err != nil {
		return respondServerError(c, "Could not load events", err)
	}
	return c.JSON(fiber.Map{"success": true, "events": events})
}

// HandleTrainingEventsFrontend serves the category-filtered listing variant.
func HandleTrainingEventsFrontend(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	events, err := repo.ListPublicByCategory(frontendCategory, time.Now(), 0, defaultPageSize)
	if err != nil {
		return respondServerError(c, "Could not load events", err)
	}
	return c.JSON(fiber.Map{"success": true, "category": frontendCategory, "events": events})
}

// HandleTrainingEventShow serves a single event detail page by slug.
func HandleTrainingEventShow(c *fiber.Ctx) error {
	slug := c.Params("slug")
	repo := repository.GetGlobalFactory().GetTrainingEventRepository()
	event, err := repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "Event not found")
		}
		return respondServerError(c, "Could not load event", err)
	}
	if !event.Active || !event.Approved {
		return respondNotFound(c, "Event not found")
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

// submitEventRequest is the organizer-facing submission payload.
type submitEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	PriceCents  int64  `json:"price_cents"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Email       string `json:"email" validate:"required,email"`
}

// HandleSubmitTrainingEvent accepts an organizer's event submission. The
// event starts out inactive and unapproved; a provider checkout for the
// listing fee is initialized and the organizer is handed the payment URL.
func HandleSubmitTrainingEvent(c *fiber.Ctx) error {
	var payload submitEventRequest
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Invalid payload")
	}
	if err := validate.Struct(&payload); err != nil {
		return respondBadRequest(c, "Missing or invalid fields")
	}

	startDate, err := time.Parse(time.RFC3339, payload.StartDate)
	if err != nil {
		return respondBadRequest(c, "Invalid start_date")
	}
	endDate, err := time.Parse(time.RFC3339, payload.EndDate)
	if err != nil || endDate.Before(startDate) {
		return respondBadRequest(c, "Invalid end_date")
	}

	event := models.TrainingEvent{
		Title:         payload.Title,
		Slug:          slugify(payload.Title),
		Description:   payload.Description,
		Category:      strings.ToLower(strings.TrimSpace(payload.Category)),
		Location:      payload.Location,
		PriceCents:    payload.PriceCents,
		StartDate:     startDate,
		EndDate:       endDate,
		Active:        false,
		Approved:      false,
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := validate.Struct(&event); err != nil {
		return respondBadRequest(c, "Missing or invalid fields")
	}

	eventRepo := repository.GetGlobalFactory().GetTrainingEventRepository()
	if exists, err := eventRepo.SlugExists(event.Slug); err != nil {
		return respondServerError(c, "Could not create event", err)
	} else if exists {
		event.Slug = event.Slug + "-" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	if err := eventRepo.Create(&event); err != nil {
		return respondServerError(c, "Could not create event", err)
	}

	feeCents := listingFeeCents()
	reference := uuid.NewString()
	tx := models.PaymentTransaction{
		Reference:       reference,
		TrainingEventID: event.ID,
		AmountCents:     feeCents,
		Status:          models.PaymentStatusPending,
	}
	paymentRepo := repository.GetGlobalFactory().GetPaymentRepository()
	if err := paymentRepo.Create(&tx); err != nil {
		return respondServerError(c, "Could not create payment", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	callbackURL := appConfig.BaseURL + "/api/payments/verify?event_id=" + strconv.FormatUint(event.ID, 10)
	checkout, err := paymentClient.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:       payload.Email,
		AmountCents: feeCents,
		Reference:   reference,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return respondServerError(c, "Could not initialize payment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"event":   event,
		"payment": fiber.Map{
			"reference":         checkout.Reference,
			"authorization_url": checkout.AuthorizationURL,
		},
	})
}

// HandleRegister records an attendee registration for an event.
func HandleRegister(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid event id")
	}

	var payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Invalid payload")
	}

	eventRepo := repository.GetGlobalFactory().GetTrainingEventRepository()
	event, err := eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "Event not found")
		}
		return respondServerError(c, "Could not load event", err)
	}
	if !event.Active || !event.Approved || event.IsExpired(time.Now()) {
		return respondBadRequest(c, "Event is not open for registration")
	}

	registration := models.Registration{
		TrainingEventID: event.ID,
		Name:            payload.Name,
		Email:           payload.Email,
	}
	if err := validate.Struct(&registration); err != nil {
		return respondBadRequest(c, "Missing or invalid name/email")
	}

	registrationRepo := repository.GetGlobalFactory().GetRegistrationRepository()
	if err := registrationRepo.Create(&registration); err != nil {
		return respondServerError(c, "Could not register", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "registration": registration})
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func listingFeeCents() int64 {
	raw := env.GetEnv("LISTING_FEE_CENTS", "5000")
	fee, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || fee <= 0 {
		return 5000
	}
	return fee
}
