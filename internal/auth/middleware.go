package auth

import (
	"shipment-portal/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	AccessTokenCookie = "access_token"

	CtxEmailKey = "user_email"
	CtxRoleKey  = "user_role"
)

// RequireAuth is the single choke point for protected routes: it resolves
// the caller from the session cookie and stores the identity in the request
// locals. Missing and invalid tokens are treated identically — a redirect to
// the login page, never an error.
func RequireAuth(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(AccessTokenCookie)
		if raw == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		id, ok := tokens.Verify(raw)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(CtxEmailKey, id.Email)
		c.Locals(CtxRoleKey, id.Role)

		return c.Next()
	}
}

// RequireRole runs after RequireAuth. Authenticated callers without an
// allowed role are sent to their own dashboard rather than shown an error.
func RequireRole(allowed ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxRoleKey).(models.UserRole)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return c.Redirect("/user-dashboard", fiber.StatusSeeOther)
	}
}

// CurrentUser reads the identity RequireAuth stored for this request.
func CurrentUser(c *fiber.Ctx) (string, models.UserRole) {
	email, _ := c.Locals(CtxEmailKey).(string)
	role, _ := c.Locals(CtxRoleKey).(models.UserRole)
	return email, role
}
