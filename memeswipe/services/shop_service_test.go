package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

func itemID(t *testing.T, e *engine, name string) int64 {
	t.Helper()
	items, err := e.shop.ListItems(context.Background(), 0)
	require.NoError(t, err)
	for _, it := range items {
		if it.Name == name {
			return it.ID
		}
	}
	t.Fatalf("item %q not seeded", name)
	return 0
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, DefaultRewardConfig())

	_, err := e.stats.CreateStats(ctx, 1, now)
	require.NoError(t, err)
	_, err = e.store.Read().Stats.AddDiamonds(ctx, 1, 200, now)
	require.NoError(t, err)

	frame := itemID(t, e, models.ItemAvatarFrame)
	golden := itemID(t, e, models.ItemGoldenPage)

	out, err := e.shop.Purchase(ctx, 1, frame, now)
	require.NoError(t, err)
	assert.Equal(t, int64(50), out.Diamonds)
	assert.True(t, out.Item.Owned)

	_, err = e.shop.Purchase(ctx, 1, frame, now)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	_, err = e.shop.Purchase(ctx, 1, golden, now)
	assert.ErrorIs(t, err, ErrInsufficientDiamonds)

	_, err = e.shop.Purchase(ctx, 1, 9999, now)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Equal(t, int64(50), e.statsOf(t, 1).Diamonds)

	items, err := e.shop.ListItems(ctx, 1)
	require.NoError(t, err)
	owned := make(map[string]bool)
	for _, it := range items {
		owned[it.Name] = it.Owned
	}
	assert.True(t, owned[models.ItemAvatarFrame])
	assert.False(t, owned[models.ItemGoldenPage], "failed purchase must not grant the item")

	vip, err := e.shop.VIPStatus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, VIPStatus{HasAvatarFrame: true}, *vip)
}
