package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SzerokiGeralt/MemeSwipe/backend/utils"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
)

// LoggingMiddleware logs HTTP requests in a structured format
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// let the error handler write the response so the logged status is final
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		attrs := []any{
			slog.String("request_id", GetRequestID(c)),
			slog.String("ip", utils.GetIPAddress(c)),
			slog.String("user_agent", utils.GetUserAgent(c)),
			slog.Int("size", len(c.Response().Body())),
		}
		if userID, ok := utils.UserID(c); ok {
			attrs = append(attrs, slog.Int64("user_id", userID))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		logger.LogRequest(c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), attrs...)
		return nil
	}
}
