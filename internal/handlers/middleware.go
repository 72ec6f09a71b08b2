package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin пускает дальше только запросы с живой админской сессией.
// Страницы уводит на /login, JSON-вызовы получают 401.
func RequireAdmin(c *fiber.Ctx) error {
	sid := c.Cookies(sessionCookie)
	if sid != "" {
		if state, ok := store.Get(sid); ok {
			c.Locals("state", state)
			c.Locals("sid", sid)
			return c.Next()
		}
	}

	if wantsJSON(c) {
		return jsonError(c, fiber.StatusUnauthorized, tr(c)["admin.unauthorized"], nil)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func wantsJSON(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet {
		return true
	}
	accept := c.Get(fiber.HeaderAccept)
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
