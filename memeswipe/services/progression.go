package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/leveling"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/streak"
)

// ensureStats loads and locks the user's stats, creating them at their floor values
// when the user has none yet.
func ensureStats(ctx context.Context, repos *repositories.Repositories, userID int64, now time.Time) (*models.UserStats, error) {
	st, err := repos.Stats.GetForUpdate(ctx, userID)
	if err == nil {
		return st, nil
	}
	if !repositories.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	if _, err := repos.Stats.Create(ctx, models.NewUserStats(userID, now)); err != nil {
		return nil, fmt.Errorf("failed to create stats: %w", err)
	}

	st, err = repos.Stats.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return st, nil
}

// lockUsers locks several users' stats in ascending ID order so two actions touching
// the same pair of users cannot deadlock.
func lockUsers(ctx context.Context, repos *repositories.Repositories, now time.Time, userIDs ...int64) (map[int64]*models.UserStats, error) {
	ids := slices.Clone(userIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	locked := make(map[int64]*models.UserStats, len(ids))
	for _, id := range ids {
		st, err := ensureStats(ctx, repos, id, now)
		if err != nil {
			return nil, err
		}
		locked[id] = st
	}
	return locked, nil
}

// applyStreak runs today's check-in against st and persists the transition.
func applyStreak(ctx context.Context, repos *repositories.Repositories, st *models.UserStats, today streak.Date, now time.Time, rec metrics.Recorder) (streak.Result, error) {
	state := streak.State{
		Streak:         st.Streak,
		LongestStreak:  st.LongestStreak,
		LastActiveDate: streak.DateFromTime(st.LastActiveDate),
	}

	next, res := streak.Evaluate(state, today)
	rec.IncStreakTransitions(string(res.Status))
	if !res.Changed {
		return res, nil
	}

	lastActive := next.LastActiveDate.Time()
	if err := repos.Stats.UpdateStreak(ctx, st.UserID, next.Streak, next.LongestStreak, lastActive, now); err != nil {
		return res, fmt.Errorf("failed to update streak: %w", err)
	}

	st.Streak = next.Streak
	st.LongestStreak = next.LongestStreak
	st.LastActiveDate = &lastActive
	return res, nil
}

// creditExperience adds delta and settles any cascade: the level is raised once and
// every level reached pays its bonus.
func creditExperience(ctx context.Context, repos *repositories.Repositories, userID, delta int64, now time.Time, rec metrics.Recorder) (*LevelUpDetail, error) {
	st, err := repos.Stats.AddExperience(ctx, userID, delta, now)
	if err != nil {
		return nil, fmt.Errorf("failed to credit experience: %w", err)
	}
	rec.AddExperience(delta)

	lu := leveling.ApplyExperience(st.Level, st.Experience-delta, delta)
	if !lu.Leveled() {
		return nil, nil
	}

	if err := repos.Stats.RaiseLevel(ctx, userID, lu.NewLevel, now); err != nil {
		return nil, fmt.Errorf("failed to raise level: %w", err)
	}

	bonus := leveling.LevelUpBonus(lu.OldLevel, lu.NewLevel)
	if err := creditDiamonds(ctx, repos, userID, bonus, "level_up", now, rec); err != nil {
		return nil, err
	}
	rec.AddLevelUps(lu.LevelsGained)

	return &LevelUpDetail{LevelUp: lu, BonusDiamonds: bonus}, nil
}

func creditDiamonds(ctx context.Context, repos *repositories.Repositories, userID, amount int64, source string, now time.Time, rec metrics.Recorder) error {
	if amount == 0 {
		return nil
	}
	if _, err := repos.Stats.AddDiamonds(ctx, userID, amount, now); err != nil {
		return fmt.Errorf("failed to credit %s diamonds: %w", source, err)
	}
	rec.AddDiamonds(source, amount)
	return nil
}

func sumRewards(completed []CompletedQuest) int64 {
	var total int64
	for _, c := range completed {
		total += c.Reward
	}
	return total
}

func statsDay(now time.Time, loc *time.Location) streak.Date {
	return streak.DateOf(now.In(loc))
}
