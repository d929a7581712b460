// Package backend is the HTTP adapter in front of the progression engine.
package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SzerokiGeralt/MemeSwipe/backend/handlers"
	"github.com/SzerokiGeralt/MemeSwipe/backend/middleware"
	"github.com/SzerokiGeralt/MemeSwipe/backend/utils"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe"
)

// Server is the fiber app together with the pieces that outlive a request.
type Server struct {
	App *fiber.App
	Web *handlers.WebApp
	// Limiter is nil when rate limiting is disabled.
	Limiter *middleware.RateLimiter

	address string
}

func NewServer(app *memeswipe.App) *Server {
	s := &Server{
		Web:     handlers.NewWebApp(app),
		address: app.Cfg.Web.Address(),
	}
	if app.Cfg.Web.RateLimit > 0 {
		s.Limiter = middleware.NewRateLimiter(app.Cfg.Web.RateLimit, time.Minute)
	}

	s.App = fiber.New(fiber.Config{
		AppName:               "MemeSwipe API",
		ServerHeader:          "MemeSwipe",
		ErrorHandler:          middleware.CustomErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	// logging sits outside recover so panics are logged with their final status
	s.App.Use(middleware.RequestID())
	s.App.Use(middleware.LoggingMiddleware())
	s.App.Use(recover.New())
	s.App.Use(middleware.Metrics(app.Metrics))
	s.App.Use(middleware.SecurityHeaders())
	s.App.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.App.Use(cors.New(cors.Config{
		AllowOrigins: app.Cfg.Web.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.UserHeader,
	}))

	if app.Cfg.Metrics.Enabled {
		s.App.Get(app.Cfg.Metrics.Path, adaptor.HTTPHandler(
			promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{}),
		))
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	web := s.Web

	s.App.Get("/health", handlers.HealthCheck(web))

	api := s.App.Group("/api")

	// called by the registration flow, not by the user
	api.Post("/stats", handlers.CreateStats(web))
	api.Get("/stats/:userID", handlers.GetStats(web))

	user := api.Group("", middleware.UserRequired())
	if s.Limiter != nil {
		user.Use(middleware.RateLimit(s.Limiter))
	}

	user.Post("/streak/check", handlers.CheckStreak(web))
	user.Post("/votes", handlers.Vote(web))
	user.Post("/uploads", handlers.Upload(web))

	user.Get("/quests", handlers.WeeklyQuests(web))
	user.Get("/quests/reset", handlers.QuestReset(web))
	user.Post("/quests/claim", handlers.ClaimQuest(web))

	user.Get("/shop", handlers.ShopItems(web))
	user.Get("/shop/vip", handlers.VIPStatus(web))
	user.Post("/shop/purchase", handlers.Purchase(web))

	user.Get("/leaders", handlers.Leaders(web))
	user.Get("/posts/next", handlers.NextPost(web))
	user.Get("/posts/mine", handlers.MyPosts(web))

	s.App.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return utils.SendNotFound(c, "The requested endpoint does not exist")
	})
}

// Run serves until ctx is cancelled and then shuts down within timeout.
func (s *Server) Run(ctx context.Context, timeout time.Duration) error {
	if s.Limiter != nil {
		go s.Limiter.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server",
			slog.String("type", "sys"),
			slog.String("address", s.address))
		errCh <- s.App.Listen(s.address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server...", slog.String("type", "sys"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.App.ShutdownWithContext(shutdownCtx)
}
