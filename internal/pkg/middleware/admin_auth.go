package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/codevine/trainhub/internal/pkg/config"
)

// AdminBasicAuth protects the admin and developer panels. The password is
// checked against the bcrypt hash from configuration; an empty hash locks the
// panels entirely.
func AdminBasicAuth(cfg *config.AppConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "trainhub admin",
		Authorizer: func(user, pass string) bool {
			if user != cfg.AdminUser || cfg.AdminPasswordHash == "" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(pass)) == nil
		},
	})
}
