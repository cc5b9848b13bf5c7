package pagecache

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevine/trainhub/internal/pkg/cache"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func newCachedApp(hits *int) *fiber.App {
	app := fiber.New()
	app.Get("/sitemap.xml", Middleware(DefaultTTL), func(c *fiber.Ctx) error {
		*hits++
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.SendString("<urlset/>")
	})
	return app
}

func TestMiddleware(t *testing.T) {
	mr := setupRedis(t)
	hits := 0
	app := newCachedApp(&hits)

	get := func() (string, string, string) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/sitemap.xml", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body), resp.Header.Get(fiber.HeaderContentType), resp.Header.Get("X-Cache")
	}

	body, ctype, xcache := get()
	assert.Equal(t, "<urlset/>", body)
	assert.Equal(t, "application/xml; charset=utf-8", ctype)
	assert.Equal(t, "MISS", xcache)
	assert.Equal(t, 1, hits)

	// Body and content type land together.
	assert.True(t, mr.Exists("page:body:/sitemap.xml"))
	assert.True(t, mr.Exists("page:ctype:/sitemap.xml"))

	// Served from the cache with the stored content type, not a JSON default.
	body, ctype, xcache = get()
	assert.Equal(t, "<urlset/>", body)
	assert.Equal(t, "application/xml; charset=utf-8", ctype)
	assert.Equal(t, "HIT", xcache)
	assert.Equal(t, 1, hits, "cached response must not re-run the handler")
}

func TestStoreInvalidate(t *testing.T) {
	mr := setupRedis(t)
	hits := 0
	app := newCachedApp(&hits)

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/sitemap.xml", nil))
	require.NoError(t, err)
	require.True(t, mr.Exists("page:body:/sitemap.xml"))

	store := NewStore()
	require.NoError(t, store.Invalidate("/sitemap.xml"))
	assert.False(t, mr.Exists("page:body:/sitemap.xml"))
	assert.False(t, mr.Exists("page:ctype:/sitemap.xml"))

	// Next request regenerates.
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/sitemap.xml", nil))
	require.NoError(t, err)
	assert.Equal(t, 2, hits)

	// Invalidating a path that is not cached is a no-op.
	require.NoError(t, store.Invalidate("/never-cached"))
}
