package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/dbtest"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
)

// Wednesday
var now = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

// firstRand always picks the lowest value, so rewards are the range minimums and the
// weekly set is the first template of every kind.
type firstRand struct{}

func (firstRand) IntN(int) int                 { return 0 }
func (firstRand) Shuffle(int, func(i, j int)) {}

// Template IDs follow seeding order; SQLite numbers a fresh table from 1.
const (
	questSwiper       int64 = 1
	questJudge        int64 = 2
	questCreator      int64 = 3
	questRegular      int64 = 4
	questCrowdPleaser int64 = 5
)

func testCatalog() []*models.QuestTemplate {
	return []*models.QuestTemplate{
		{Name: "Swiper", ActionKind: models.ActionVote, TargetCount: 2, Reward: 15},
		{Name: "Judge", ActionKind: models.ActionVote, TargetCount: 50, Reward: 35},
		{Name: "Creator", ActionKind: models.ActionUpload, TargetCount: 1, Reward: 20},
		{Name: "Regular", ActionKind: models.ActionStreak, TargetCount: 3, Reward: 20},
		{Name: "Crowd Pleaser", ActionKind: models.ActionUpvote, TargetCount: 2, Reward: 25},
	}
}

func testItems() []*models.Item {
	return []*models.Item{
		{Name: models.ItemAvatarFrame, Cost: 150},
		{Name: models.ItemCooldownReducer, Cost: 300},
		{Name: models.ItemGoldenPage, Cost: 500},
	}
}

type engine struct {
	store    repositories.Store
	stats    *StatsService
	quests   *QuestService
	pipeline *RewardPipeline
	shop     *ShopService
}

func newEngine(t *testing.T, rewards RewardConfig) *engine {
	t.Helper()

	store := dbtest.Store(t, testCatalog(), testItems())

	qs := NewQuestService(store, firstRand{}, time.UTC, nil)
	return &engine{
		store:    store,
		stats:    NewStatsService(store, time.UTC, nil),
		quests:   qs,
		pipeline: NewRewardPipeline(store, qs, rewards, firstRand{}, time.UTC, nil),
		shop:     NewShopService(store, nil),
	}
}

func (e *engine) createPost(t *testing.T, authorID int64) *models.Post {
	t.Helper()
	post := &models.Post{UserID: authorID, ImageURL: "/uploads/meme.png", CreatedAt: now}
	require.NoError(t, e.store.Read().Posts.Create(context.Background(), post))
	return post
}

func (e *engine) statsOf(t *testing.T, userID int64) *models.UserStats {
	t.Helper()
	st, err := e.store.Read().Stats.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	return st
}

func (e *engine) assignment(t *testing.T, userID, questID int64) *models.QuestAssignment {
	t.Helper()
	a, err := e.store.Read().Quests.GetAssignment(context.Background(), userID, questID)
	require.NoError(t, err)
	return a
}

func (e *engine) setProgress(t *testing.T, userID, questID int64, progress int) {
	t.Helper()
	a := e.assignment(t, userID, questID)
	err := e.store.RunInTx(context.Background(), func(ctx context.Context, repos *repositories.Repositories) error {
		_, err := repos.Quests.SetProgress(ctx, a.ID, progress)
		return err
	})
	require.NoError(t, err)
}
