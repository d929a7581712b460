package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
)

const LeaderboardLimit = 100

type Period string

const (
	PeriodAll     Period = "all"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod falls back to PeriodAll for empty or unknown values.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p
	default:
		return PeriodAll
	}
}

// Since returns the start of the window ending at now. PeriodAll has no start.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case PeriodMonthly:
		return now.AddDate(0, -1, 0)
	case PeriodYearly:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

type LeaderboardService struct {
	store repositories.Store
}

func NewLeaderboardService(store repositories.Store) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// TopByUpvotes ranks users by the upvotes their posts from the period collected.
func (s *LeaderboardService) TopByUpvotes(ctx context.Context, period Period, now time.Time) ([]*models.LeaderRow, error) {
	rows, err := s.store.Read().Leaders.TopByUpvotes(ctx, period.Since(now), LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return rows, nil
}
