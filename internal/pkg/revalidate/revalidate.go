// Package revalidate decides which cached page paths must be dropped when an
// area of the site changes, and applies the invalidation through a page cache.
package revalidate

import "strings"

// Kind enumerates the closed set of revalidation triggers.
type Kind int

const (
	// KindExplicitPath invalidates a single caller-supplied path, widened to
	// the listing pages when the path is an event detail page.
	KindExplicitPath Kind = iota
	// KindDeploymentSucceeded fires on a successful deployment webhook.
	KindDeploymentSucceeded
	// KindScheduled fires from the cron trigger endpoint or the in-process
	// scheduler.
	KindScheduled
)

// Public catalog paths affected by event changes.
const (
	ListingPath         = "/training-events"
	FilteredListingPath = "/training-events/frontend"
	SitemapPath         = "/sitemap.xml"
	APISitemapPath      = "/api/sitemap.xml"

	detailPrefix = "/training-events/"
)

// WebhookTypeDeploymentSucceeded is the only webhook type that triggers
// invalidation; all other types are acknowledged without side effect.
const WebhookTypeDeploymentSucceeded = "deployment.succeeded"

// Request is one logical "area of the site changed" event. Path is only
// meaningful for KindExplicitPath.
type Request struct {
	Kind Kind
	Path string
}

// fixedSet is invalidated for deployments and scheduled runs.
var fixedSet = []string{ListingPath, FilteredListingPath, SitemapPath, APISitemapPath}

// Paths returns the deduplicated set of cache paths the request maps to.
func (r Request) Paths() []string {
	switch r.Kind {
	case KindExplicitPath:
		paths := []string{r.Path}
		if strings.HasPrefix(r.Path, detailPrefix) {
			paths = append(paths, ListingPath, FilteredListingPath)
		}
		return dedupe(paths)
	case KindDeploymentSucceeded, KindScheduled:
		out := make([]string, len(fixedSet))
		copy(out, fixedSet)
		return out
	default:
		return nil
	}
}

// KindForWebhookType maps a webhook type string to a revalidation kind.
// The bool result is false for types that carry no invalidation.
func KindForWebhookType(webhookType string) (Kind, bool) {
	if webhookType == WebhookTypeDeploymentSucceeded {
		return KindDeploymentSucceeded, true
	}
	return 0, false
}

// Invalidator drops cached renderings for a set of paths.
type Invalidator interface {
	Invalidate(paths ...string) error
}

// Dispatcher applies revalidation requests against a page cache.
type Dispatcher struct {
	inv Invalidator
}

// NewDispatcher creates a dispatcher backed by the given invalidator.
func NewDispatcher(inv Invalidator) *Dispatcher {
	return &Dispatcher{inv: inv}
}

// Apply invalidates every path the request maps to, synchronously, as a
// single unit: on error no partial success is reported even though some paths
// may already have been dropped.
func (d *Dispatcher) Apply(r Request) ([]string, error) {
	paths := r.Paths()
	if len(paths) == 0 {
		return nil, nil
	}
	if err := d.inv.Invalidate(paths...); err != nil {
		return nil, err
	}
	return paths, nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
