package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-portal/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateApp(svc *TokenService) *fiber.App {
	app := fiber.New()

	authed := app.Group("", RequireAuth(svc))
	authed.Get("/whoami", func(c *fiber.Ctx) error {
		email, role := CurrentUser(c)
		return c.SendString(email + ":" + string(role))
	})

	adminOnly := authed.Group("", RequireRole(models.RoleAdmin))
	adminOnly.Get("/admin-area", func(c *fiber.Ctx) error {
		return c.SendString("admin ok")
	})

	return app
}

func doGet(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: cookie})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth_NoCookieRedirectsToLogin(t *testing.T) {
	app := newGateApp(newTokenService("0123456789abcdef0123456789abcdef", "HS256"))

	resp := doGet(t, app, "/whoami", "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireAuth_InvalidTokenRedirectsToLogin(t *testing.T) {
	app := newGateApp(newTokenService("0123456789abcdef0123456789abcdef", "HS256"))

	resp := doGet(t, app, "/whoami", "not-a-token")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireAuth_ExpiredTokenRedirectsToLogin(t *testing.T) {
	svc := newTokenService("0123456789abcdef0123456789abcdef", "HS256")
	app := newGateApp(svc)

	tok, err := svc.Issue("a@x.com", models.RoleUser, -1*time.Second)
	require.NoError(t, err)

	resp := doGet(t, app, "/whoami", tok)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireAuth_ValidTokenResolvesIdentity(t *testing.T) {
	svc := newTokenService("0123456789abcdef0123456789abcdef", "HS256")
	app := newGateApp(svc)

	tok, err := svc.Issue("a@x.com", models.RoleUser, time.Hour)
	require.NoError(t, err)

	resp := doGet(t, app, "/whoami", tok)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com:user", readBody(t, resp))
}

func TestRequireRole_NonAdminRedirectedToOwnDashboard(t *testing.T) {
	svc := newTokenService("0123456789abcdef0123456789abcdef", "HS256")
	app := newGateApp(svc)

	tok, err := svc.Issue("a@x.com", models.RoleUser, time.Hour)
	require.NoError(t, err)

	resp := doGet(t, app, "/admin-area", tok)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/user-dashboard", resp.Header.Get("Location"))
}

func TestRequireRole_AdminPasses(t *testing.T) {
	svc := newTokenService("0123456789abcdef0123456789abcdef", "HS256")
	app := newGateApp(svc)

	tok, err := svc.Issue("root@x.com", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	resp := doGet(t, app, "/admin-area", tok)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin ok", readBody(t, resp))
}
