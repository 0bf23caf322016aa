package dashboard

import (
	"shipment-portal/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// GET /admin-dashboard
func AdminDashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := auth.CurrentUser(c)
		return c.Render("admin_dashboard", fiber.Map{"Email": email})
	}
}

// GET /user-dashboard
func UserDashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := auth.CurrentUser(c)
		return c.Render("user_dashboard", fiber.Map{"Email": email})
	}
}
