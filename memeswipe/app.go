package memeswipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/quests"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/services"
)

// App holds the engine and everything it runs on.
type App struct {
	Cfg      Config
	Version  string
	Commit   string
	Location *time.Location

	// DB is nil for the memory driver.
	DB    *database.DB
	Store repositories.Store

	Registry *prometheus.Registry
	Metrics  metrics.Recorder

	Stats       *services.StatsService
	Quests      *services.QuestService
	Pipeline    *services.RewardPipeline
	Shop        *services.ShopService
	Leaderboard *services.LeaderboardService
	Feed        *services.FeedService
}

// New opens the configured store, prepares its schema and builds the services.
func New(ctx context.Context, cfg Config, version, commit string) (*App, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, err
	}

	app := &App{
		Cfg:      cfg,
		Version:  version,
		Commit:   commit,
		Location: loc,
	}

	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.Metrics = metrics.New(cfg.Metrics.Enabled, app.Registry)

	if err := app.openStore(ctx); err != nil {
		return nil, err
	}

	app.Stats = services.NewStatsService(app.Store, loc, app.Metrics)
	app.Quests = services.NewQuestService(app.Store, quests.DefaultRand, loc, app.Metrics)
	app.Pipeline = services.NewRewardPipeline(app.Store, app.Quests, cfg.Rewards, quests.DefaultRand, loc, app.Metrics)
	app.Shop = services.NewShopService(app.Store, app.Metrics)
	app.Leaderboard = services.NewLeaderboardService(app.Store)
	app.Feed = services.NewFeedService(app.Store)

	logger.LogSystem("Engine initialized",
		slog.String("driver", cfg.DB.Driver),
		slog.String("timezone", loc.String()),
		slog.String("version", version))
	return app, nil
}

func (a *App) openStore(ctx context.Context) error {
	if a.Cfg.DB.Driver == database.DriverMemory {
		slog.Warn("Using in-memory database, data is lost on exit", slog.String("type", "sys"))
	}

	dbStart := time.Now()
	db, err := database.New(ctx, a.Cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("Database connected successfully",
		slog.String("type", "db"),
		slog.String("driver", db.Driver()),
		slog.Duration("took", time.Since(dbStart)))

	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.DB = db
	a.Store = repositories.NewStore(db.BunDB())
	return nil
}

// Ping checks the database.
func (a *App) Ping(ctx context.Context) error {
	if a.DB == nil {
		return errors.New("database not open")
	}
	return a.DB.Ping(ctx)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
