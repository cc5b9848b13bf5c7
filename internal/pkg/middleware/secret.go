package middleware

import (
	"crypto/subtle"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// SecretEquals reports whether the presented secret matches the expected one.
// Exact and case-sensitive, no trimming; the comparison runs in constant time.
func SecretEquals(presented, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

// QuerySecretGate guards trigger endpoints that carry the shared secret in
// the `secret` query parameter. On mismatch the request is rejected with 401
// before any side effect runs.
func QuerySecretGate(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !SecretEquals(c.Query("secret"), expected) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid secret"})
		}
		return c.Next()
	}
}

// BodySecretGate guards trigger endpoints that carry the shared secret in a
// `secret` field of the JSON body. The body stays available for the handler.
func BodySecretGate(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload struct {
			Secret string `json:"secret"`
		}
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid secret"})
		}
		if !SecretEquals(payload.Secret, expected) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid secret"})
		}
		return c.Next()
	}
}
