package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/quests"
)

const catalogCacheKey = "quest_templates"

// QuestService owns the weekly quest cycle: regenerating expired sets, advancing
// progress on actions and paying out claims.
type QuestService struct {
	store   repositories.Store
	rng     quests.Rand
	loc     *time.Location
	metrics metrics.Recorder

	catalog *lru.Cache
	group   singleflight.Group
}

func NewQuestService(store repositories.Store, rng quests.Rand, loc *time.Location, rec metrics.Recorder) *QuestService {
	if loc == nil {
		loc = time.UTC
	}
	if rec == nil {
		rec = metrics.Noop()
	}
	cache, _ := lru.New(8)
	return &QuestService{
		store:   store,
		rng:     newLockedRand(rng),
		loc:     loc,
		metrics: rec,
		catalog: cache,
	}
}

// templates returns the catalog. It never changes while the process runs, so the
// first successful load is cached.
func (s *QuestService) templates(ctx context.Context, repos *repositories.Repositories) ([]*models.QuestTemplate, error) {
	if cached, ok := s.catalog.Get(catalogCacheKey); ok {
		s.metrics.IncCatalogCacheHits()
		return cached.([]*models.QuestTemplate), nil
	}
	s.metrics.IncCatalogCacheMisses()

	templates, err := repos.Quests.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest catalog: %w", err)
	}
	if len(templates) > 0 {
		s.catalog.Add(catalogCacheKey, templates)
	}
	return templates, nil
}

// InvalidateCatalog drops the cached catalog after a reseed.
func (s *QuestService) InvalidateCatalog() {
	s.catalog.Remove(catalogCacheKey)
}

func allExpired(assignments []*models.QuestAssignment, now time.Time) bool {
	for _, a := range assignments {
		if !a.Expired(now) {
			return false
		}
	}
	return true
}

// refreshWeeklySet must run inside a transaction that already holds the user's stats
// lock. It returns the current set, regenerating it when it is missing or expired.
func (s *QuestService) refreshWeeklySet(ctx context.Context, repos *repositories.Repositories, userID int64, now time.Time) ([]*models.QuestAssignment, error) {
	current, err := repos.Quests.ListAssignments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	if len(current) > 0 && !allExpired(current, now) {
		return current, nil
	}

	catalog, err := s.templates(ctx, repos)
	if err != nil {
		return nil, err
	}

	if err := repos.Quests.DeleteAssignments(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete expired assignments: %w", err)
	}

	selected, err := quests.SelectWeekly(catalog, s.rng)
	if errors.Is(err, quests.ErrCatalogTooSmall) {
		slog.Warn("Quest catalog too small, no weekly set assigned",
			slog.String("type", "sys"),
			slog.Int("templates", len(catalog)),
			slog.Int64("user_id", userID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select weekly quests: %w", err)
	}

	expiresAt := quests.WeekEnd(now.In(s.loc))
	assignments := make([]*models.QuestAssignment, 0, len(selected))
	for _, t := range selected {
		assignments = append(assignments, &models.QuestAssignment{
			UserID:          userID,
			QuestTemplateID: t.ID,
			ExpiresAt:       expiresAt,
			CreatedAt:       now,
		})
	}

	if _, err := repos.Quests.InsertAssignments(ctx, assignments); err != nil {
		return nil, fmt.Errorf("failed to insert assignments: %w", err)
	}

	logger.LogAction("quests_regenerated", userID,
		slog.Int("quests", len(assignments)),
		slog.Time("expires_at", expiresAt))

	current, err = repos.Quests.ListAssignments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return current, nil
}

// GetOrRefreshWeeklySet returns the user's active set, replacing it wholesale when
// every assignment has expired. Concurrent calls for one user and week converge on one
// set; a caller that gives up does not cancel the refresh for the others.
func (s *QuestService) GetOrRefreshWeeklySet(ctx context.Context, userID int64, now time.Time) ([]*models.QuestAssignment, error) {
	key := flightKey(userID, quests.WeekEnd(now.In(s.loc)))
	flightCtx := context.WithoutCancel(ctx)

	ch := s.group.DoChan(key, func() (any, error) {
		var out []*models.QuestAssignment
		err := s.store.RunInTx(flightCtx, func(ctx context.Context, repos *repositories.Repositories) error {
			if _, err := ensureStats(ctx, repos, userID, now); err != nil {
				return err
			}
			var err error
			out, err = s.refreshWeeklySet(ctx, repos, userID, now)
			return err
		})
		return out, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]*models.QuestAssignment), nil
	}
}

func flightKey(userID int64, weekEnd time.Time) string {
	return strconv.FormatInt(userID, 10) + "@" + strconv.FormatInt(weekEnd.Unix(), 10)
}

func (s *QuestService) GetWeeklyQuests(ctx context.Context, userID int64, now time.Time) ([]QuestView, error) {
	assignments, err := s.GetOrRefreshWeeklySet(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	views := make([]QuestView, 0, len(assignments))
	for _, a := range assignments {
		views = append(views, newQuestView(a))
	}
	return views, nil
}

// TimeUntilReset counts down to the end of the current week in the configured zone.
func (s *QuestService) TimeUntilReset(now time.Time) quests.ResetCountdown {
	return quests.TimeUntilReset(now.In(s.loc))
}

// advance moves every open assignment of kind forward and completes those that reach
// their target. Streak quests take value as their progress; every other kind counts
// one step. Nothing is credited here.
func (s *QuestService) advance(ctx context.Context, repos *repositories.Repositories, userID int64, kind models.ActionKind, value int, now time.Time) ([]CompletedQuest, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown action kind %q", kind)
	}

	open, err := repos.Quests.ListOpenByKind(ctx, userID, kind, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s quests: %w", kind, err)
	}

	var completed []CompletedQuest
	for _, a := range open {
		var progress int
		if kind.Absolute() {
			progress, err = repos.Quests.SetProgress(ctx, a.ID, value)
		} else {
			progress, err = repos.Quests.IncrementProgress(ctx, a.ID, 1)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to advance quest %d: %w", a.QuestTemplateID, err)
		}

		if a.Template == nil || progress < a.Template.TargetCount {
			continue
		}

		done, err := repos.Quests.MarkCompleted(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to complete quest %d: %w", a.QuestTemplateID, err)
		}
		if !done {
			continue
		}

		s.metrics.IncQuestsCompleted(string(kind))
		completed = append(completed, CompletedQuest{
			QuestID:    a.QuestTemplateID,
			Name:       a.Template.Name,
			ActionKind: kind,
			Reward:     a.Template.Reward,
		})
	}
	return completed, nil
}

// AdvanceByAction advances the user's quests in a transaction of its own and returns
// the newly completed ones. The caller credits their rewards.
func (s *QuestService) AdvanceByAction(ctx context.Context, userID int64, kind models.ActionKind, value int, now time.Time) ([]CompletedQuest, error) {
	var completed []CompletedQuest
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if _, err := ensureStats(ctx, repos, userID, now); err != nil {
			return err
		}
		var err error
		completed, err = s.advance(ctx, repos, userID, kind, value, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// ClaimQuestReward completes a quest whose progress reached its target and credits
// the reward exactly once.
func (s *QuestService) ClaimQuestReward(ctx context.Context, userID, questID int64, now time.Time) (*ClaimOutcome, error) {
	var out ClaimOutcome
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if _, err := ensureStats(ctx, repos, userID, now); err != nil {
			return err
		}

		a, err := repos.Quests.GetAssignment(ctx, userID, questID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return ErrQuestNotFound
			}
			return fmt.Errorf("failed to load quest: %w", err)
		}
		if a.Template == nil || a.Expired(now) {
			return ErrQuestNotFound
		}
		if a.Completed {
			return ErrAlreadyClaimed
		}
		if !a.ReachedTarget() {
			return ErrNotYetComplete
		}

		done, err := repos.Quests.MarkCompleted(ctx, a.ID)
		if err != nil {
			return fmt.Errorf("failed to complete quest: %w", err)
		}
		if !done {
			return ErrAlreadyClaimed
		}

		if err := creditDiamonds(ctx, repos, userID, a.Template.Reward, "quest", now, s.metrics); err != nil {
			return err
		}
		s.metrics.IncQuestsCompleted(string(a.Template.ActionKind))

		st, err := repos.Stats.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to reload stats: %w", err)
		}

		out = ClaimOutcome{
			QuestID: questID,
			Reward:  a.Template.Reward,
			Stats:   newStatsView(st, statsDay(now, s.loc)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.LogAction("quest_claimed", userID,
		slog.Int64("quest_id", questID),
		slog.Int64("reward", out.Reward))
	return &out, nil
}
