package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminTokenCookie is the httpOnly session cookie set on login.
const AdminTokenCookie = "admin_token"

// GetRawAdminToken returns the admin session token from:
// 1) cookie "admin_token"
// 2) Authorization header "Bearer <token>"
func GetRawAdminToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(AdminTokenCookie)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
