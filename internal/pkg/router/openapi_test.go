package router

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The served swagger document must stay valid OpenAPI 3 and keep
// describing every route the API router installs.
func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	for _, path := range []string{
		"/api/health",
		"/api/payments/verify",
		"/api/analytics/click",
		"/api/revalidate",
		"/api/webhooks/deploy",
		"/api/cron/cleanup",
		"/api/cron/revalidate",
		"/training-events",
		"/training-events/frontend",
		"/training-events/{slug}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from openapi.yml", path)
	}
}
