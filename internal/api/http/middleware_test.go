package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/observability"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

func newTestApp(metrics *observability.Metrics) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("recipe", nil)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pool closed")
	})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return auth.ErrForbidden
	})
	return app
}

func getStatus(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestErrorResponsesCarryMappedStatus(t *testing.T) {
	app := newTestApp(observability.NewMetrics())

	assert.Equal(t, http.StatusOK, getStatus(t, app, "/ok"))
	assert.Equal(t, http.StatusNotFound, getStatus(t, app, "/missing"))
	assert.Equal(t, http.StatusForbidden, getStatus(t, app, "/forbidden"))
	// Unrecognized errors must not leak detail, only a 500.
	assert.Equal(t, http.StatusInternalServerError, getStatus(t, app, "/boom"))
}

// The request logger wraps the error handler, so the counters must record the
// status the error handler wrote rather than the pre-mapping 200.
func TestRequestCountersRecordMappedStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := newTestApp(metrics)

	require.Equal(t, http.StatusNotFound, getStatus(t, app, "/missing"))
	require.Equal(t, http.StatusOK, getStatus(t, app, "/ok"))

	counts := metrics.Requests()
	assert.Equal(t, int64(1), counts["/missing|GET|404"])
	assert.Equal(t, int64(1), counts["/ok|GET|200"])
	assert.NotContains(t, counts, "/missing|GET|200")
}
