package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/streak"
)

type StatsService struct {
	store   repositories.Store
	loc     *time.Location
	metrics metrics.Recorder
}

func NewStatsService(store repositories.Store, loc *time.Location, rec metrics.Recorder) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	if rec == nil {
		rec = metrics.Noop()
	}
	return &StatsService{store: store, loc: loc, metrics: rec}
}

func (s *StatsService) today(now time.Time) streak.Date {
	return statsDay(now, s.loc)
}

// GetStats returns ErrUserNotFound when the user has no stats yet.
func (s *StatsService) GetStats(ctx context.Context, userID int64, now time.Time) (*StatsView, error) {
	st, err := s.store.Read().Stats.GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return newStatsView(st, s.today(now)), nil
}

// CreateStats creates the floor record for a newly registered user. Calling it for a
// user who already has stats returns the existing record.
func (s *StatsService) CreateStats(ctx context.Context, userID int64, now time.Time) (*StatsView, error) {
	var st *models.UserStats
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		created, err := repos.Stats.Create(ctx, models.NewUserStats(userID, now))
		if err != nil {
			return fmt.Errorf("failed to create stats: %w", err)
		}
		if created {
			logger.LogSystem("Stats created", slog.Int64("user_id", userID))
		}

		st, err = repos.Stats.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newStatsView(st, s.today(now)), nil
}

// CheckAndProcessStreak applies the daily check-in. Repeated calls on the same day
// report maintained and write nothing.
func (s *StatsService) CheckAndProcessStreak(ctx context.Context, userID int64, now time.Time) (*streak.Result, error) {
	var res streak.Result
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		st, err := ensureStats(ctx, repos, userID, now)
		if err != nil {
			return err
		}
		res, err = applyStreak(ctx, repos, st, s.today(now), now, s.metrics)
		return err
	})
	if err != nil {
		return nil, err
	}

	if res.Changed {
		logger.LogAction("streak", userID,
			slog.String("status", string(res.Status)),
			slog.Int("streak", res.Streak))
	}
	return &res, nil
}
