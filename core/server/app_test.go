package server_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"fixture-server/core/middleware/rayid"
	"fixture-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewApp_Health(t *testing.T) {
	app := server.NewApp(zap.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestNewApp_NotFound(t *testing.T) {
	app := server.NewApp(zap.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestNewApp_ErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := server.NewApp(zap.New(core))

	app.Get("/fiber-error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "no such fixture")
	})
	app.Get("/plain-error", func(c *fiber.Ctx) error {
		return errors.New("disk on fire")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fiber-error", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "no such fixture", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/plain-error", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "disk on fire")

	errs := logs.FilterMessage("Request error").All()
	require.Len(t, errs, 1)
	assert.Equal(t, "disk on fire", errs[0].ContextMap()["error"])
}

func TestNewApp_RequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := server.NewApp(zap.New(core))

	_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	started := logs.FilterMessage("Request started").All()
	require.Len(t, started, 1)
	fields := started[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/health", fields["path"])
	assert.NotEmpty(t, fields["ray_id"])
}
