package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

func newMiddlewareApp(tm *TokenManager) *fiber.App {
	mw := NewMiddleware(tm)
	app := fiber.New(fiber.Config{
		// Stand-in for the app's error middleware: surface DomainError status codes.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Message)
		},
	})
	app.Get("/optional", mw.Authenticate, func(c *fiber.Ctx) error {
		if claims, ok := ClaimsFromContext(c); ok {
			return c.SendString(claims.Username)
		}
		credErr := CredentialError(c)
		switch {
		case errors.Is(credErr, ErrNoCredential):
			return c.SendString("anonymous")
		default:
			return c.SendString("rejected")
		}
	})
	app.Get("/protected", mw.Authenticate, mw.RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestAuthenticateDistinguishesAbsentFromInvalid(t *testing.T) {
	tm := newTestTokenManager("mw-secret")
	app := newMiddlewareApp(tm)

	status, body := doRequest(t, app, "/optional", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)

	status, body = doRequest(t, app, "/optional", "Bearer garbage")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "rejected", body)

	token, _, err := tm.Generate(9, "carol")
	require.NoError(t, err)
	status, body = doRequest(t, app, "/optional", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "carol", body)
}

func TestRequireAuth(t *testing.T) {
	tm := newTestTokenManager("mw-secret")
	app := newMiddlewareApp(tm)

	status, _ := doRequest(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doRequest(t, app, "/protected", "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, status)

	expired := newTestTokenManager("mw-secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	staleToken, _, err := expired.Generate(9, "carol")
	require.NoError(t, err)
	status, _ = doRequest(t, app, "/protected", "Bearer "+staleToken)
	assert.Equal(t, http.StatusUnauthorized, status)

	token, _, err := tm.Generate(9, "carol")
	require.NoError(t, err)
	status, body := doRequest(t, app, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}
