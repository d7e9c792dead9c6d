package page

import (
	"fixture-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Data is passed to index.html.
type Data struct {
	Title       string
	Version     string
	StaticURL   string
	FixturesURL string
}

// Handler handles HTTP requests for the page.
type Handler struct {
	renderer *Renderer
	data     Data
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(renderer *Renderer, data Data, logger *zap.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		data:     data,
		logger:   logger,
	}
}

// RegisterRoutes registers the page route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
}

// HandleIndex renders the visualiser page.
// @Summary Index Page
// @Description Renders the linked-data visualiser page.
// @Tags page
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "Template missing"
// @Router / [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	body, err := h.renderer.Render(h.data)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Index render failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}
