package middleware

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SzerokiGeralt/MemeSwipe/backend/utils"
)

// UserHeader carries the authenticated user ID set by the upstream auth layer.
const UserHeader = "X-User-ID"

// UserRequired rejects requests without a valid user ID and stores it for handlers.
func UserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(UserHeader)
		if raw == "" {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			slog.Debug("Rejected malformed user header",
				slog.String("type", "http"),
				slog.String("value", raw))
			return utils.SendUnauthorized(c, "Invalid user identity")
		}

		c.Locals(utils.UserIDKey, userID)
		return c.Next()
	}
}
