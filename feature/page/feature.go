package page

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements loader.Feature for the page.
type Feature struct {
	handler *Handler
}

// NewFeature creates the page feature rendering templates from templatesDir.
func NewFeature(templatesDir string, debug bool, data Data, logger *zap.Logger) *Feature {
	renderer := NewRenderer(os.DirFS(templatesDir), debug)
	return &Feature{handler: NewHandler(renderer, data, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "page"
}

// IsEnabled always returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the page route.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
