package main

import (
	"log"

	"shipment-portal/internal/admin"
	"shipment-portal/internal/audit"
	"shipment-portal/internal/auth"
	"shipment-portal/internal/config"
	"shipment-portal/internal/dashboard"
	"shipment-portal/internal/database"
	"shipment-portal/internal/models"
	"shipment-portal/internal/shipments"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	database.Init(cfg)

	if err := admin.EnsureDefaultAdmin(cfg); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	tokens := auth.NewTokenService(cfg)
	captcha := auth.NewCaptchaVerifier(cfg)

	engine := html.New(cfg.TemplateDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Something went wrong. Please try again."
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			} else {
				log.Println("Unexpected error:", err)
			}
			return c.Status(code).Render("error", fiber.Map{"Message": msg})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Static("/static", cfg.StaticDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusSeeOther)
	})

	// Public
	app.Get("/login", auth.LoginPageHandler(cfg))
	app.Post("/login", auth.LoginHandler(cfg, tokens, captcha))
	app.Get("/signup", auth.SignupPageHandler())
	app.Post("/signup", auth.SignupHandler())
	app.Get("/logout", auth.LogoutHandler())

	// Authenticated
	authed := app.Group("", auth.RequireAuth(tokens))
	authed.Get("/user-dashboard", dashboard.UserDashboardHandler())

	// Admin only
	adminRoutes := authed.Group("", auth.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/admin-dashboard", dashboard.AdminDashboardHandler())

	adminRoutes.Get("/admin/users", admin.ListUsersHandler())
	adminRoutes.Get("/admin/users/edit/:id", admin.EditUserFormHandler())
	adminRoutes.Post("/admin/users/edit/:id", admin.UpdateUserHandler())
	adminRoutes.Post("/admin/users/delete/:id", admin.DeleteUserHandler())

	adminRoutes.Get("/admin/shipments", shipments.ListShipmentsHandler())
	adminRoutes.Get("/admin/shipments/create", shipments.CreatePageHandler())
	adminRoutes.Post("/admin/shipments/create", shipments.CreateShipmentHandler())

	adminRoutes.Get("/admin/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
