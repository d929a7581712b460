package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SzerokiGeralt/MemeSwipe/backend/utils"
)

// RateLimiter implements a simple in-memory sliding window limiter
type RateLimiter struct {
	requests map[string][]time.Time
	mutex    sync.Mutex
	window   time.Duration
	limit    int
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
	}
}

// Allow records a request for key at now and reports whether it fits the window.
// When it does not, the second value is how long until the oldest request leaves it.
func (rl *RateLimiter) Allow(key string, now time.Time) (bool, time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	valid := prune(rl.requests[key], now.Add(-rl.window))

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false, valid[0].Add(rl.window).Sub(now)
	}

	rl.requests[key] = append(valid, now)
	return true, 0
}

func prune(requests []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(requests) && !requests[i].After(cutoff) {
		i++
	}
	return requests[i:]
}

// Run drops idle keys every window until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.cleanup(now)
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	cutoff := now.Add(-rl.window)
	for key, requests := range rl.requests {
		if valid := prune(requests, cutoff); len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

// RateLimit limits requests per authenticated user, falling back to the client IP.
func RateLimit(limiter *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := utils.GetIPAddress(c)
		if userID, ok := utils.UserID(c); ok {
			key = "user:" + strconv.FormatInt(userID, 10)
		}

		if ok, retry := limiter.Allow(key, time.Now()); !ok {
			slog.Warn("Rate limit exceeded",
				slog.String("type", "http"),
				slog.String("key", key),
				slog.String("path", c.Path()),
				slog.Int("limit", limiter.limit),
				slog.Duration("window", limiter.window))

			return utils.SendTooManyRequests(c, "RATE_LIMIT_EXCEEDED",
				"Too many requests. Please try again later.", retry)
		}

		return c.Next()
	}
}
