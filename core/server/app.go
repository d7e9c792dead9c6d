package server

import (
	"errors"

	"fixture-server/core/logger"
	"fixture-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp creates the Fiber application with the ray id and request logging
// middleware, the health endpoint and an error handler that logs every
// failure it answers.
func NewApp(logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		// Fixture names may contain escaped characters such as %20.
		UnescapePath: true,
		ErrorHandler: errorHandler(logg),
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	app.Get("/health", HandleHealth)

	return app
}

// HandleHealth reports that the server is up.
// @Summary Health Check
// @Description Returns 200 while the server is running.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Health status"
// @Router /health [get]
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		return c.Next()
	}
}

func errorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		l := logger.WithRayID(logg, c)
		if code >= fiber.StatusInternalServerError {
			l.Error("Request error", zap.Int("status", code), zap.Error(err))
		} else {
			l.Info("Request rejected", zap.Int("status", code), zap.Error(err))
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		if code >= fiber.StatusInternalServerError && fe == nil {
			// Internal details stay in the log.
			return c.Status(code).SendString(fiber.ErrInternalServerError.Message)
		}
		return c.Status(code).SendString(err.Error())
	}
}
