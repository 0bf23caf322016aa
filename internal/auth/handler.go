package auth

import (
	"strings"
	"time"

	"shipment-portal/internal/config"
	"shipment-portal/internal/database"
	"shipment-portal/internal/flash"
	"shipment-portal/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GET /login
func LoginPageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("login", fiber.Map{
			"Message":          flash.Pop(c, flash.LoginMessageCookie),
			"RecaptchaSiteKey": cfg.RecaptchaSiteKey,
			"Email":            "",
		})
	}
}

// POST /login
//
// The bot-check runs before anything touches the credential store: a failed
// or unreachable check short-circuits with its own message and must not
// reveal whether the email/password would have matched.
func LoginHandler(cfg *config.Config, tokens *TokenService, checker BotChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
		password := c.FormValue("password")
		captcha := c.FormValue("g-recaptcha-response")

		// Re-renders echo the submitted email so the user only retypes the
		// password and challenge.
		render := func(msg string) error {
			return c.Render("login", fiber.Map{
				"Message":          msg,
				"RecaptchaSiteKey": cfg.RecaptchaSiteKey,
				"Email":            email,
			})
		}

		if !checker.Verify(captcha) {
			return render("reCAPTCHA verification failed. Please try again.")
		}

		if email == "" || password == "" {
			return render("Email and password are required.")
		}

		var user models.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			return render("Invalid email or password.")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return render("Invalid email or password.")
		}

		token, err := tokens.Issue(user.Email, user.Role, tokens.TTL())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create a session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     AccessTokenCookie,
			Value:    token,
			MaxAge:   int(tokens.TTL().Seconds()),
			HTTPOnly: true,
			Path:     "/",
		})
		flash.Set(c, flash.LoginMessageCookie, "Logged in successfully!", 10*time.Second)

		target := "/user-dashboard"
		if user.Role == models.RoleAdmin {
			target = "/admin-dashboard"
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}
}

// GET /signup
func SignupPageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("signup", fiber.Map{"Username": "", "Email": ""})
	}
}

// POST /signup
func SignupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.FormValue("username"))
		email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
		password := c.FormValue("password")

		render := func(msg string) error {
			return c.Render("signup", fiber.Map{
				"Message":  msg,
				"Username": name,
				"Email":    email,
			})
		}

		if name == "" || email == "" || password == "" {
			return render("Username, email and password are required.")
		}
		if len(password) < 6 {
			return render("Password must be at least 6 characters.")
		}

		var count int64
		if err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create the account")
		}
		if count > 0 {
			return render("User already exists.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create the account")
		}

		user := models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleUser,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create the account")
		}

		flash.Set(c, flash.LoginMessageCookie, "Signup successful! Please log in.", 10*time.Second)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// GET /logout
//
// Sessions are stateless, so logout is purely client-side: drop the token
// cookie and any pending notice.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     AccessTokenCookie,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			Path:     "/",
		})
		flash.Clear(c, flash.LoginMessageCookie)

		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}
