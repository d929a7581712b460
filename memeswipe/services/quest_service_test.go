package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/dbtest"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/quests"
)

func TestGetWeeklyQuests(t *testing.T) {
	e := newEngine(t, DefaultRewardConfig())

	views, err := e.quests.GetWeeklyQuests(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, views, quests.WeeklySetSize)

	kinds := make(map[models.ActionKind]bool)
	for _, v := range views {
		kinds[v.ActionKind] = true
		assert.Zero(t, v.Progress)
		assert.False(t, v.Completed)
		assert.True(t, quests.WeekEnd(now).Equal(v.ExpiresAt), "expires at %s", v.ExpiresAt)
	}
	assert.Len(t, kinds, 4, "every kind should be represented")
}

func TestGetOrRefreshWeeklySetKeepsActiveSet(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())

	first, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, now)
	require.NoError(t, err)
	e.setProgress(t, 1, questSwiper, 1)

	again, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, now.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, again, len(first))
	assert.Equal(t, 1, e.assignment(t, 1, questSwiper).Progress)
}

func TestGetOrRefreshWeeklySetReplacesExpiredSet(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())

	_, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, now)
	require.NoError(t, err)
	e.setProgress(t, 1, questSwiper, 1)

	nextWeek := now.AddDate(0, 0, 7)
	set, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, nextWeek)
	require.NoError(t, err)
	require.Len(t, set, quests.WeeklySetSize)

	for _, a := range set {
		assert.Zero(t, a.Progress)
		assert.True(t, quests.WeekEnd(nextWeek).Equal(a.ExpiresAt), "expires at %s", a.ExpiresAt)
	}
}

func assertSingleSet(t *testing.T, store repositories.Store, userID int64) {
	t.Helper()

	set, err := store.Read().Quests.ListAssignments(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, set, quests.WeeklySetSize)

	seen := make(map[int64]bool)
	for _, a := range set {
		assert.False(t, seen[a.QuestTemplateID], "template %d assigned twice", a.QuestTemplateID)
		seen[a.QuestTemplateID] = true
	}
}

func TestGetOrRefreshWeeklySetConcurrent(t *testing.T) {
	store := dbtest.Store(t, testCatalog(), nil)
	qs := NewQuestService(store, nil, time.UTC, nil)

	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			_, err := qs.GetOrRefreshWeeklySet(context.Background(), 1, now)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assertSingleSet(t, store, 1)
}

// Separate services share nothing in process, so only the database serializes them.
func TestGetOrRefreshWeeklySetConcurrentAcrossServices(t *testing.T) {
	ctx := context.Background()
	store := dbtest.Store(t, testCatalog(), nil)

	services := make([]*QuestService, 4)
	for i := range services {
		services[i] = NewQuestService(store, nil, time.UTC, nil)
	}

	// an expired set forces every caller down the regeneration path
	_, err := services[0].GetOrRefreshWeeklySet(ctx, 1, now.AddDate(0, 0, -7))
	require.NoError(t, err)

	var g errgroup.Group
	for i := range 16 {
		qs := services[i%len(services)]
		g.Go(func() error {
			_, err := qs.GetOrRefreshWeeklySet(ctx, 1, now)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assertSingleSet(t, store, 1)

	set, err := store.Read().Quests.ListAssignments(ctx, 1)
	require.NoError(t, err)
	for _, a := range set {
		assert.True(t, quests.WeekEnd(now).Equal(a.ExpiresAt))
	}
}

func TestGetOrRefreshWeeklySetCancelledCaller(t *testing.T) {
	store := dbtest.Store(t, testCatalog(), nil)
	qs := NewQuestService(store, nil, time.UTC, nil)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := qs.GetOrRefreshWeeklySet(cancelled, 1, now); err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}

	set, err := qs.GetOrRefreshWeeklySet(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Len(t, set, quests.WeeklySetSize)
}

func TestFlightKeySeparatesWeeks(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.March, 16, 23, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2025, time.March, 17, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, flightKey(1, quests.WeekEnd(monday)), flightKey(1, quests.WeekEnd(sunday)))
	assert.NotEqual(t, flightKey(1, quests.WeekEnd(sunday)), flightKey(1, quests.WeekEnd(nextMonday)))
	assert.NotEqual(t, flightKey(1, quests.WeekEnd(monday)), flightKey(2, quests.WeekEnd(monday)))
}

func TestGetOrRefreshWeeklySetSmallCatalog(t *testing.T) {
	store := dbtest.Store(t, testCatalog()[:2], nil)
	qs := NewQuestService(store, firstRand{}, time.UTC, nil)

	set, err := qs.GetOrRefreshWeeklySet(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestClaimQuestReward(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())

	_, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, now)
	require.NoError(t, err)

	_, err = e.quests.ClaimQuestReward(ctx, 1, questJudge, now)
	assert.ErrorIs(t, err, ErrQuestNotFound, "template outside the set")

	_, err = e.quests.ClaimQuestReward(ctx, 1, questSwiper, now)
	assert.ErrorIs(t, err, ErrNotYetComplete)

	e.setProgress(t, 1, questSwiper, 2)

	out, err := e.quests.ClaimQuestReward(ctx, 1, questSwiper, now)
	require.NoError(t, err)
	assert.Equal(t, questSwiper, out.QuestID)
	assert.Equal(t, int64(15), out.Reward)
	assert.Equal(t, int64(15), out.Stats.Diamonds)

	_, err = e.quests.ClaimQuestReward(ctx, 1, questSwiper, now)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, int64(15), e.statsOf(t, 1).Diamonds)
}

func TestClaimQuestRewardExpired(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())

	_, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, now)
	require.NoError(t, err)
	e.setProgress(t, 1, questSwiper, 2)

	_, err = e.quests.ClaimQuestReward(ctx, 1, questSwiper, quests.WeekEnd(now).Add(time.Second))
	assert.ErrorIs(t, err, ErrQuestNotFound)
	assert.Zero(t, e.statsOf(t, 1).Diamonds)
}

func TestAdvanceByAction(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())

	_, err := e.quests.GetOrRefreshWeeklySet(ctx, 1, now)
	require.NoError(t, err)

	done, err := e.quests.AdvanceByAction(ctx, 1, models.ActionStreak, 2, now)
	require.NoError(t, err)
	assert.Empty(t, done)
	assert.Equal(t, 2, e.assignment(t, 1, questRegular).Progress)

	// streak progress is absolute
	done, err = e.quests.AdvanceByAction(ctx, 1, models.ActionStreak, 5, now)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, questRegular, done[0].QuestID)
	assert.Equal(t, int64(20), done[0].Reward)

	// rewards are left to the caller
	assert.Zero(t, e.statsOf(t, 1).Diamonds)

	done, err = e.quests.AdvanceByAction(ctx, 1, models.ActionStreak, 6, now)
	require.NoError(t, err)
	assert.Empty(t, done)

	_, err = e.quests.AdvanceByAction(ctx, 1, "dance", 1, now)
	assert.Error(t, err)
}

func TestTimeUntilResetUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	qs := NewQuestService(nil, nil, loc, nil)

	// Sunday 23:30 UTC is already Monday in UTC+2
	sunday := time.Date(2025, time.March, 16, 23, 30, 0, 0, time.UTC)
	got := qs.TimeUntilReset(sunday)

	assert.Equal(t, time.Date(2025, time.March, 23, 23, 59, 59, 0, loc), got.ResetAt)
	assert.Equal(t, 6, got.Days)
}
