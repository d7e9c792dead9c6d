package fixtures

import (
	"errors"
	"net/http"

	"fixture-server/core/logger"
	"fixture-server/core/mimetypes"
	"fixture-server/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RoutePrefix is the URL prefix fixtures are served under.
const RoutePrefix = "/static/test"

// UnsupportedTypeMessage is the error message returned for unknown extensions.
const UnsupportedTypeMessage = "File type not supported"

// Handler handles HTTP requests for fixtures.
type Handler struct {
	source   source.Source
	registry *mimetypes.Registry
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(src source.Source, registry *mimetypes.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		source:   src,
		registry: registry,
		logger:   logger,
	}
}

// RegisterRoutes registers the fixture routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	// Get also answers HEAD requests.
	app.Get(RoutePrefix+"/*", h.HandleFixture)
}

// HandleFixture serves a single fixture file.
// @Summary Get Fixture
// @Description Returns a test data file with the MIME type resolved from its extension (.jsonld, .ttl and .mei have custom types).
// @Tags fixtures
// @Produce application/ld+json
// @Produce text/turtle
// @Produce application/xml
// @Param filename path string true "Fixture path relative to the fixture root"
// @Success 200 {file} file "Fixture content"
// @Failure 400 {object} map[string]string "File type not supported"
// @Failure 404 {string} string "Not Found"
// @Router /static/test/{filename} [get]
func (h *Handler) HandleFixture(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	filename := c.Params("*")
	if filename == "" {
		return fiber.ErrNotFound
	}

	mimetype := h.registry.TypeByFilename(filename)
	l.Debug("Fixture requested",
		zap.String("filename", filename),
		zap.String("mimetype", mimetype),
	)
	if mimetype == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": UnsupportedTypeMessage})
	}

	obj, err := h.source.Open(c.UserContext(), filename)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	c.Set(fiber.HeaderContentType, mimetype)
	if !obj.ModTime.IsZero() {
		c.Set(fiber.HeaderLastModified, obj.ModTime.UTC().Format(http.TimeFormat))
	}

	if c.Method() == fiber.MethodHead {
		_ = obj.Body.Close()
		c.Response().SkipBody = true
		c.Response().Header.SetContentLength(int(obj.Size))
		return nil
	}

	// The response closes the body once it has been written.
	c.Response().SetBodyStream(obj.Body, int(obj.Size))
	return nil
}
