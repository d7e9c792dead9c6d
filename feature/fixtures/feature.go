package fixtures

import (
	"fixture-server/core/mimetypes"
	"fixture-server/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements loader.Feature for fixture serving.
type Feature struct {
	handler *Handler
}

// NewFeature creates the fixtures feature.
func NewFeature(src source.Source, registry *mimetypes.Registry, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(src, registry, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "fixtures"
}

// IsEnabled always returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the fixture routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
