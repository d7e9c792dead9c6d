// Package assets serves the page's scripts and stylesheets under /static.
//
// Content types come from Fiber's default extension table. The fixtures
// feature must be loaded first so that /static/test keeps its own MIME rules.
package assets

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RoutePrefix is the URL prefix assets are served under.
const RoutePrefix = "/static"

// Feature implements loader.Feature for static assets.
type Feature struct {
	dir   string
	debug bool
}

// NewFeature creates the assets feature serving dir.
func NewFeature(dir string, debug bool) *Feature {
	return &Feature{dir: dir, debug: debug}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "assets"
}

// IsEnabled returns false when no directory is configured.
func (f *Feature) IsEnabled() bool {
	return f.dir != ""
}

// Load registers the static file route.
func (f *Feature) Load(app fiber.Router) error {
	cfg := fiber.Static{
		ByteRange:     true,
		CacheDuration: 10 * time.Second,
	}
	if f.debug {
		cfg.CacheDuration = -1
	}
	app.Static(RoutePrefix, f.dir, cfg)
	return nil
}
