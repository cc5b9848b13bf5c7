package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codevine/trainhub/app/controllers"
	"github.com/codevine/trainhub/internal/pkg/pagecache"
)

// HttpRouter installs the public site routes. Catalog and sitemap pages are
// cached by path; the revalidation dispatcher drops exactly these paths.
type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	cached := pagecache.Middleware(pagecache.DefaultTTL)

	// Marketing pages
	app.Get("/", controllers.HandleHome)
	app.Get("/about", controllers.HandleAbout)
	app.Get("/contact", controllers.HandleContact)

	// Catalog pages; the fixed route must precede the slug route
	app.Get("/training-events", cached, controllers.HandleTrainingEventsIndex)
	app.Get("/training-events/frontend", cached, controllers.HandleTrainingEventsFrontend)
	app.Get("/training-events/:slug", cached, controllers.HandleTrainingEventShow)

	// Sitemap (static route; the API mirror lives in the api router)
	app.Get("/sitemap.xml", cached, controllers.HandleSitemap)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
