package revalidate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	calls [][]string
	err   error
}

func (r *recordingInvalidator) Invalidate(paths ...string) error {
	r.calls = append(r.calls, paths)
	return r.err
}

func TestRequest_Paths(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "detail path widens to listing and filtered listing",
			req:  Request{Kind: KindExplicitPath, Path: "/training-events/123"},
			want: []string{"/training-events/123", "/training-events", "/training-events/frontend"},
		},
		{
			name: "non-detail path stays alone",
			req:  Request{Kind: KindExplicitPath, Path: "/about"},
			want: []string{"/about"},
		},
		{
			name: "listing path itself stays alone",
			req:  Request{Kind: KindExplicitPath, Path: "/training-events"},
			want: []string{"/training-events"},
		},
		{
			name: "filtered listing dedupes against itself",
			req:  Request{Kind: KindExplicitPath, Path: "/training-events/frontend"},
			want: []string{"/training-events/frontend", "/training-events"},
		},
		{
			name: "deployment succeeded hits the fixed four-path set",
			req:  Request{Kind: KindDeploymentSucceeded},
			want: []string{"/training-events", "/training-events/frontend", "/sitemap.xml", "/api/sitemap.xml"},
		},
		{
			name: "scheduled run hits the same fixed set",
			req:  Request{Kind: KindScheduled},
			want: []string{"/training-events", "/training-events/frontend", "/sitemap.xml", "/api/sitemap.xml"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.Paths())
		})
	}
}

func TestKindForWebhookType(t *testing.T) {
	kind, ok := KindForWebhookType("deployment.succeeded")
	require.True(t, ok)
	assert.Equal(t, KindDeploymentSucceeded, kind)

	_, ok = KindForWebhookType("deployment.failed")
	assert.False(t, ok)
	_, ok = KindForWebhookType("")
	assert.False(t, ok)
}

func TestDispatcher_Apply(t *testing.T) {
	inv := &recordingInvalidator{}
	d := NewDispatcher(inv)

	paths, err := d.Apply(Request{Kind: KindExplicitPath, Path: "/training-events/123"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/training-events/123", "/training-events", "/training-events/frontend"}, paths)
	require.Len(t, inv.calls, 1)
	assert.Equal(t, paths, inv.calls[0])
}

func TestDispatcher_Apply_Idempotent(t *testing.T) {
	inv := &recordingInvalidator{}
	d := NewDispatcher(inv)

	first, err := d.Apply(Request{Kind: KindScheduled})
	require.NoError(t, err)
	second, err := d.Apply(Request{Kind: KindScheduled})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, inv.calls, 2)
}

func TestDispatcher_Apply_Error(t *testing.T) {
	inv := &recordingInvalidator{err: errors.New("backend down")}
	d := NewDispatcher(inv)

	paths, err := d.Apply(Request{Kind: KindDeploymentSucceeded})
	assert.Error(t, err)
	assert.Nil(t, paths, "no partial success is reported")
}
