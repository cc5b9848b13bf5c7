package controllers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/models"
	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/logging"
	"github.com/codevine/trainhub/internal/pkg/paystack"
	"github.com/codevine/trainhub/internal/pkg/revalidate"
)

// HandleVerifyPayment is the return URL of the hosted checkout. It asks the
// provider for the authoritative transaction state and only marks the event
// paid and approved on a confirmed success, then sends the visitor on to the
// success page.
func HandleVerifyPayment(c *fiber.Ctx) error {
	reference := strings.TrimSpace(c.Query("reference"))
	eventIDParam := strings.TrimSpace(c.Query("event_id"))
	if reference == "" || eventIDParam == "" {
		return respondBadRequest(c, "Missing reference or event_id")
	}
	eventID, err := strconv.ParseUint(eventIDParam, 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid event_id")
	}

	paymentRepo := repository.GetGlobalFactory().GetPaymentRepository()

	tx, err := paymentRepo.GetByReference(reference)
	if err != nil {
		return respondServerError(c, "Unknown payment reference", err)
	}
	if tx.TrainingEventID != eventID {
		return respondBadRequest(c, "Reference does not belong to event")
	}

	// Already verified once; skip the provider but re-apply the approval so a
	// retry after a partial failure still converges on an approved event.
	if tx.Status == models.PaymentStatusPaid {
		if err := approveEventAfterPayment(eventID); err != nil {
			return respondServerError(c, "Could not approve event", err)
		}
		return c.Redirect(appConfig.BaseURL+"/training-events/payment-success?reference="+reference, fiber.StatusSeeOther)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	result, err := paymentClient.VerifyTransaction(ctx, reference)
	if err != nil {
		return respondServerError(c, "Payment verification failed", err)
	}

	if result.Status != paystack.TransactionSuccess {
		if err := paymentRepo.MarkVerified(reference, models.PaymentStatusFailed, result.RawJSON, time.Now()); err != nil {
			logging.Log.Errorf("failed to record failed verification for %s: %v", reference, err)
		}
		return c.Redirect(appConfig.BaseURL+"/training-events/payment-failed?reference="+reference, fiber.StatusSeeOther)
	}

	if err := paymentRepo.MarkVerified(reference, models.PaymentStatusPaid, result.RawJSON, time.Now()); err != nil {
		return respondServerError(c, "Could not record payment", err)
	}
	if err := approveEventAfterPayment(eventID); err != nil {
		return respondServerError(c, "Could not approve event", err)
	}

	return c.Redirect(appConfig.BaseURL+"/training-events/payment-success?reference="+reference, fiber.StatusSeeOther)
}

// approveEventAfterPayment marks the event paid, approved and active, then
// drops its cached pages. Idempotent, so the verify handler can re-run it on
// every request for a paid reference.
func approveEventAfterPayment(eventID uint64) error {
	eventRepo := repository.GetGlobalFactory().GetTrainingEventRepository()
	if err := eventRepo.MarkPaidAndApproved(eventID); err != nil {
		return err
	}

	// The event just became publicly visible; drop its cached pages.
	if event, err := eventRepo.GetByID(eventID); err == nil {
		if _, err := dispatcher.Apply(revalidate.Request{
			Kind: revalidate.KindExplicitPath,
			Path: event.DetailPath(),
		}); err != nil {
			logging.Log.Warnf("revalidation after payment for event %d failed: %v", eventID, err)
		}
	}
	return nil
}
