package integrity

import (
	"fixture-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckFailedMessage is returned to clients when the fixture listing fails.
// The cause is only logged.
const CheckFailedMessage = "Fixture check failed"

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/fixtures", h.HandleFixturesCheck)
}

// HandleFixturesCheck reports fixtures that would be rejected.
// @Summary Check Fixtures
// @Description Lists all fixtures and reports the ones whose MIME type cannot be resolved.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Fixture Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/fixtures [get]
func (h *Handler) HandleFixturesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting fixture integrity check")

	report, err := h.service.CheckFixtures(c.UserContext())
	if err != nil {
		l.Error("Fixture check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": CheckFailedMessage})
	}

	l.Info("Fixture check completed",
		zap.Int("total", report.Total),
		zap.Int("unsupported", len(report.Unsupported)))

	return c.JSON(report)
}
