package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevine/trainhub/app/models"
	"github.com/codevine/trainhub/internal/pkg/database"
)

func TestHandleClick(t *testing.T) {
	setupTest(t)

	app := fiber.New()
	app.Post("/api/analytics/click", HandleClick)

	post := func(body string) (int, map[string]any) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/analytics/click", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		return resp.StatusCode, decoded
	}

	countClicks := func() int64 {
		var count int64
		require.NoError(t, database.GetDB().Model(&models.ClickEvent{}).Count(&count).Error)
		return count
	}

	t.Run("accepts a complete click", func(t *testing.T) {
		status, body := post(`{"eventId":"e1","target":"cta-hero"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, int64(1), countClicks())
	})

	t.Run("rejects missing target", func(t *testing.T) {
		status, body := post(`{"eventId":"e1"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, int64(1), countClicks(), "nothing must be recorded")
	})

	t.Run("rejects missing eventId", func(t *testing.T) {
		status, _ := post(`{"target":"cta-hero"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, int64(1), countClicks())
	})

	t.Run("rejects blank values", func(t *testing.T) {
		status, _ := post(`{"eventId":"  ","target":"cta-hero"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, int64(1), countClicks())
	})
}
