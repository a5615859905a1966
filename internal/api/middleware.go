package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userIDContextKey = "userID"

// RequireAuth accepts the session cookie or a bearer token and stashes the
// authenticated user id in the request context.
func (handler *Handler) RequireAuth(c *fiber.Ctx) error {
	raw := c.Cookies(authCookieName)
	if raw == "" {
		header := c.Get(fiber.HeaderAuthorization)
		if after, found := strings.CutPrefix(header, "Bearer "); found {
			raw = after
		}
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	userID, err := handler.parseToken(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
	}

	c.Locals(userIDContextKey, userID)
	return c.Next()
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(userIDContextKey).(uint)
	return userID
}
