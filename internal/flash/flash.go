// Package flash carries one-shot notices across a redirect: a short-lived
// cookie set next to the redirect, consumed and cleared by exactly the next
// matching GET. It is not a general state store.
package flash

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// LoginMessageCookie carries notices shown on the login page.
	LoginMessageCookie = "login_message"
	// MessageCookie carries notices shown on the shipment creation form.
	MessageCookie = "message"
)

// Set attaches a notice to the response. The value is URL-escaped so
// free-text messages survive the cookie header.
func Set(c *fiber.Ctx, name, value string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:   name,
		Value:  url.QueryEscape(value),
		MaxAge: int(maxAge.Seconds()),
		Path:   "/",
	})
}

// Pop returns the pending notice, clearing it so a refresh does not replay
// it. Returns "" when no notice is pending.
func Pop(c *fiber.Ctx, name string) string {
	raw := c.Cookies(name)
	if raw == "" {
		return ""
	}
	Clear(c, name)

	v, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

// Clear expires the cookie immediately.
func Clear(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:    name,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		MaxAge:  -1,
		Path:    "/",
	})
}
