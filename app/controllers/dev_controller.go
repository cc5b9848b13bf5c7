package controllers

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/repository"
)

// Developer panel: cache inspection. Keys contain slashes, so they travel in
// the `key` query parameter rather than a route segment.

// HandleDevCacheKeys lists all cache keys with their TTLs.
func HandleDevCacheKeys(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCacheRepository()
	keys, err := repo.GetAllKeys()
	if err != nil {
		return respondServerError(c, "Could not list cache keys", err)
	}
	sort.Strings(keys)

	entries := make([]fiber.Map, 0, len(keys))
	for _, key := range keys {
		entry := fiber.Map{"key": key}
		if ttl, err := repo.GetTTL(key); err == nil {
			entry["ttl_seconds"] = int64(ttl.Seconds())
		}
		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{"success": true, "count": len(entries), "keys": entries})
}

// HandleDevCacheValue shows the stored value for one cache key.
func HandleDevCacheValue(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		return respondBadRequest(c, "Missing key")
	}

	repo := repository.GetGlobalFactory().GetCacheRepository()
	value, err := repo.GetValue(key)
	if err != nil {
		return respondNotFound(c, "Key not found")
	}

	return c.JSON(fiber.Map{"success": true, "key": key, "value": value})
}

// HandleDevCacheDelete drops one cache key.
func HandleDevCacheDelete(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		return respondBadRequest(c, "Missing key")
	}

	repo := repository.GetGlobalFactory().GetCacheRepository()
	if err := repo.DeleteKey(key); err != nil {
		return respondServerError(c, "Could not delete key", err)
	}

	return c.JSON(fiber.Map{"success": true, "key": key})
}
