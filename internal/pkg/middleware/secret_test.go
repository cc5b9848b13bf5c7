package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Access is granted iff the presented secret equals the expected one:
// exact, case-sensitive, no trimming.
func TestProperty_SecretEquals(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("grants iff strings are exactly equal", prop.ForAll(
		func(presented, expected string) bool {
			return SecretEquals(presented, expected) == (presented == expected)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("every secret matches itself", prop.ForAll(
		func(secret string) bool {
			return SecretEquals(secret, secret)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestSecretEquals_Exact(t *testing.T) {
	assert.True(t, SecretEquals("s3cret", "s3cret"))
	assert.False(t, SecretEquals("s3cret ", "s3cret"))
	assert.False(t, SecretEquals("S3cret", "s3cret"))
	assert.False(t, SecretEquals("", "s3cret"))
}

func TestQuerySecretGate(t *testing.T) {
	app := fiber.New()
	hit := false
	app.Post("/cron/cleanup", QuerySecretGate("expected"), func(c *fiber.Ctx) error {
		hit = true
		return c.JSON(fiber.Map{"success": true})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/cron/cleanup?secret=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hit, "handler must not run on a bad secret")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/cron/cleanup?secret=expected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, hit)
}

func TestBodySecretGate(t *testing.T) {
	app := fiber.New()
	app.Post("/revalidate", BodySecretGate("expected"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid secret", `{"secret":"expected","path":"/x"}`, fiber.StatusOK},
		{"wrong secret", `{"secret":"nope"}`, fiber.StatusUnauthorized},
		{"missing secret", `{}`, fiber.StatusUnauthorized},
		{"malformed body", `not-json`, fiber.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/revalidate", strings.NewReader(tc.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
			_, _ = io.ReadAll(resp.Body)
		})
	}
}
