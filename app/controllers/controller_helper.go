package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/internal/pkg/config"
	"github.com/codevine/trainhub/internal/pkg/env"
	"github.com/codevine/trainhub/internal/pkg/logging"
	"github.com/codevine/trainhub/internal/pkg/pagecache"
	"github.com/codevine/trainhub/internal/pkg/paystack"
	"github.com/codevine/trainhub/internal/pkg/revalidate"
)

var validate = validator.New()

var (
	appConfig     *config.AppConfig
	dispatcher    *revalidate.Dispatcher
	paymentClient *paystack.Client
)

// InitializeControllers wires the controllers with process configuration, the
// revalidation dispatcher and the payment client.
func InitializeControllers(cfg *config.AppConfig) {
	appConfig = cfg
	dispatcher = revalidate.NewDispatcher(pagecache.NewStore())
	paymentClient = paystack.NewClientFromEnv()
}

// SetDispatcher overrides the revalidation dispatcher; used by tests.
func SetDispatcher(d *revalidate.Dispatcher) {
	dispatcher = d
}

// SetPaymentClient overrides the payment client; used by tests.
func SetPaymentClient(c *paystack.Client) {
	paymentClient = c
}

// respondServerError logs the dependency failure and answers with a generic
// message. Detail is only exposed outside production.
func respondServerError(c *fiber.Ctx, publicMsg string, err error) error {
	logging.Log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), publicMsg, err)
	body := fiber.Map{"success": false, "message": publicMsg}
	if env.IsDev() {
		body["detail"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func respondBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": msg})
}

func respondNotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": msg})
}
