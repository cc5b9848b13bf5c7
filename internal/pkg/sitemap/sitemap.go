package sitemap

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/codevine/trainhub/app/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// staticPaths are the always-present site pages.
var staticPaths = []string{
	"/",
	"/about",
	"/contact",
	"/training-events",
	"/training-events/frontend",
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Generate renders the sitemap XML for the static pages plus the detail page
// of every listed event.
func Generate(baseURL string, events []models.TrainingEvent) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	set := urlSet{Xmlns: xmlns}
	for _, path := range staticPaths {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + path})
	}
	for _, event := range events {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + event.DetailPath(),
			LastMod: event.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
