package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

// DefaultQuestCatalog is the weekly quest catalog. Every action kind has at least two
// templates so a set usually covers all four kinds.
func DefaultQuestCatalog() []*models.QuestTemplate {
	return []*models.QuestTemplate{
		{Name: "Swiper", Description: "Vote on 20 memes", ActionKind: models.ActionVote, TargetCount: 20, Reward: 15},
		{Name: "Judge", Description: "Vote on 50 memes", ActionKind: models.ActionVote, TargetCount: 50, Reward: 35},
		{Name: "Critic", Description: "Vote on 100 memes", ActionKind: models.ActionVote, TargetCount: 100, Reward: 75},
		{Name: "Creator", Description: "Upload 1 meme", ActionKind: models.ActionUpload, TargetCount: 1, Reward: 20},
		{Name: "Content Machine", Description: "Upload 3 memes", ActionKind: models.ActionUpload, TargetCount: 3, Reward: 50},
		{Name: "Regular", Description: "Keep a 3 day streak", ActionKind: models.ActionStreak, TargetCount: 3, Reward: 20},
		{Name: "Devoted", Description: "Keep a 7 day streak", ActionKind: models.ActionStreak, TargetCount: 7, Reward: 60},
		{Name: "Crowd Pleaser", Description: "Collect 10 upvotes on your memes", ActionKind: models.ActionUpvote, TargetCount: 10, Reward: 25},
		{Name: "Viral", Description: "Collect 50 upvotes on your memes", ActionKind: models.ActionUpvote, TargetCount: 50, Reward: 80},
	}
}

// DefaultItemCatalog is the diamond shop.
func DefaultItemCatalog() []*models.Item {
	return []*models.Item{
		{Name: models.ItemAvatarFrame, Description: "A shiny frame around your avatar", Cost: 150},
		{Name: models.ItemCooldownReducer, Description: "Halves the upload cooldown", Cost: 300},
		{Name: models.ItemGoldenPage, Description: "Golden profile page", Cost: 500},
		{Name: models.ItemVIPBadge, Description: "VIP badge next to your name", Cost: 1000},
	}
}

// InitializeQuestData upserts the quest catalog by name.
func (db *DB) InitializeQuestData(ctx context.Context) error {
	return SeedQuestTemplates(ctx, db.bunDB, DefaultQuestCatalog())
}

// InitializeItemData upserts the shop catalog by name.
func (db *DB) InitializeItemData(ctx context.Context) error {
	return SeedItems(ctx, db.bunDB, DefaultItemCatalog())
}

func SeedQuestTemplates(ctx context.Context, idb bun.IDB, templates []*models.QuestTemplate) error {
	_, err := idb.NewInsert().
		Model(&templates).
		On("CONFLICT (name) DO UPDATE").
		Set("description = EXCLUDED.description").
		Set("action_kind = EXCLUDED.action_kind").
		Set("target_count = EXCLUDED.target_count").
		Set("reward = EXCLUDED.reward").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert quest templates: %w", err)
	}

	slog.Info("Quest catalog initialized",
		slog.String("type", "db"),
		slog.Int("total_quests", len(templates)))
	return nil
}

func SeedItems(ctx context.Context, idb bun.IDB, items []*models.Item) error {
	_, err := idb.NewInsert().
		Model(&items).
		On("CONFLICT (name) DO UPDATE").
		Set("description = EXCLUDED.description").
		Set("cost = EXCLUDED.cost").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert items: %w", err)
	}

	slog.Info("Item catalog initialized",
		slog.String("type", "db"),
		slog.Int("total_items", len(items)))
	return nil
}
