package integrity

import (
	"fixture-server/core/mimetypes"
	"fixture-server/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements loader.Feature for integrity checks.
type Feature struct {
	handler *Handler
}

// NewFeature creates the integrity feature.
func NewFeature(src source.Source, registry *mimetypes.Registry, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(src, registry, logger))}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled always returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the integrity routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
