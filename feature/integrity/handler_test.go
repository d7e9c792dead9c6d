package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"fixture-server/core/mimetypes"
	"fixture-server/core/source"
	"fixture-server/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, src source.Source) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := NewService(src, mimetypes.MustDefault(), zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleFixturesCheck(t *testing.T) {
	app := setupTestApp(t, source.NewLocal(fstest.MapFS{
		"sample.jsonld":     {Data: []byte("{}")},
		"sample.ttl":        {Data: []byte("")},
		"scores/sample.mei": {Data: []byte("")},
		"notes.xyz123":      {Data: []byte("")},
		"scores/README":     {Data: []byte("")},
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/fixtures", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "checked", report.Status)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, []string{"notes.xyz123", "scores/README"}, report.Unsupported)
}

func TestHandleFixturesCheck_AllSupported(t *testing.T) {
	app := setupTestApp(t, source.NewLocal(fstest.MapFS{
		"sample.ttl": {Data: []byte("")},
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/fixtures", nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []any{}, body["unsupported"])
}

func TestHandleFixturesCheck_SourceError(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)
	client.On("ListObjects", mock.Anything, "fixtures", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	app := setupTestApp(t, source.NewBucket(client, "fixtures", "static/test"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/fixtures", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": CheckFailedMessage}, body)
	assert.NotContains(t, body["error"], assert.AnError.Error())
}

func TestFeature(t *testing.T) {
	feature := NewFeature(source.NewLocal(fstest.MapFS{}), mimetypes.MustDefault(), zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
