package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
)

// Metrics records request counts and latency per route pattern.
func Metrics(rec metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		rec.IncRequestsTotal(route, c.Response().StatusCode())
		rec.ObserveRequestDuration(route, time.Since(start))
		return err
	}
}
