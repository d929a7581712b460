package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories/mock"
)

func TestParsePeriod(t *testing.T) {
	tests := map[string]Period{
		"":        PeriodAll,
		"all":     PeriodAll,
		"weekly":  PeriodWeekly,
		"monthly": PeriodMonthly,
		"yearly":  PeriodYearly,
		"daily":   PeriodAll,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParsePeriod(in), "ParsePeriod(%q)", in)
	}
}

func TestPeriodSince(t *testing.T) {
	assert.True(t, PeriodAll.Since(now).IsZero())
	assert.Equal(t, now.AddDate(0, 0, -7), PeriodWeekly.Since(now))
	assert.Equal(t, time.Date(2025, time.February, 12, 10, 0, 0, 0, time.UTC), PeriodMonthly.Since(now))
	assert.Equal(t, time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC), PeriodYearly.Since(now))
}

func TestTopByUpvotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	leaders := mock.NewMockLeaderRepository(ctrl)

	rows := []*models.LeaderRow{{UserID: 2, TotalUpvotes: 9}, {UserID: 1, TotalUpvotes: 3}}
	leaders.EXPECT().TopByUpvotes(gomock.Any(), now.AddDate(0, 0, -7), LeaderboardLimit).Return(rows, nil)
	store.EXPECT().Read().Return(&repositories.Repositories{Leaders: leaders})

	got, err := NewLeaderboardService(store).TopByUpvotes(context.Background(), PeriodWeekly, now)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestFeed(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())
	feed := NewFeedService(e.store)

	post := e.createPost(t, 2)

	next, err := feed.NextPost(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, post.ID, next.ID)

	_, err = e.pipeline.ApplyVote(ctx, 1, post.ID, models.VoteUp, now)
	require.NoError(t, err)

	next, err = feed.NextPost(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, next)

	mine, err := feed.UserPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].Upvotes)
}
