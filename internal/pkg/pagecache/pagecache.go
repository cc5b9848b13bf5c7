package pagecache

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/internal/pkg/cache"
	"github.com/codevine/trainhub/internal/pkg/logging"
)

const (
	bodyKeyPrefix  = "page:body:"
	ctypeKeyPrefix = "page:ctype:"

	// DefaultTTL bounds staleness even when no revalidation trigger fires.
	DefaultTTL = 1 * time.Hour
)

// Key returns the cache key holding the rendered body for a path.
func Key(path string) string {
	return bodyKeyPrefix + path
}

func ctypeKey(path string) string {
	return ctypeKeyPrefix + path
}

// Middleware caches successful GET responses of the wrapped routes under
// their request path and serves subsequent requests from the cache until the
// path is invalidated or the TTL expires.
func Middleware(ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		path := c.Path()
		if body, err := cache.Get(Key(path)); err == nil {
			contentType := fiber.MIMEApplicationJSON
			if ct, err := cache.Get(ctypeKey(path)); err == nil && ct != "" {
				contentType = ct
			}
			c.Set(fiber.HeaderContentType, contentType)
			c.Set("X-Cache", "HIT")
			return c.Status(fiber.StatusOK).SendString(body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			// Body and content type are written as one group; a HIT must
			// never pair a cached body with a missing or stale content type.
			entry := map[string]string{
				Key(path):      string(c.Response().Body()),
				ctypeKey(path): string(c.Response().Header.ContentType()),
			}
			if err := cache.SetMulti(entry, ttl); err != nil {
				logging.Log.Warnf("page cache store failed for %s: %v", path, err)
			}
			c.Set("X-Cache", "MISS")
		}

		return nil
	}
}

// Store is the redis-backed invalidator used by the revalidation dispatcher.
type Store struct{}

// NewStore returns the page cache store.
func NewStore() *Store {
	return &Store{}
}

// Invalidate drops the cached renderings for the given paths. Invalidating a
// path that is not cached is a no-op.
func (s *Store) Invalidate(paths ...string) error {
	keys := make([]string, 0, len(paths)*2)
	for _, path := range paths {
		keys = append(keys, Key(path), ctypeKey(path))
	}
	return cache.Delete(keys...)
}
