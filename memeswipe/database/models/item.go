package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Shop item names with gameplay effects.
const (
	ItemVIPBadge        = "VIP Badge"
	ItemGoldenPage      = "Golden Page"
	ItemAvatarFrame     = "Avatar Frame"
	ItemCooldownReducer = "Cooldown Reducer"
)

type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Name        string `bun:"name,notnull,unique"`
	Description string `bun:"description,notnull"`
	Cost        int64  `bun:"cost,notnull"`
}

type UserItem struct {
	bun.BaseModel `bun:"table:user_items,alias:ui"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:user_item"`
	ItemID    int64     `bun:"item_id,notnull,unique:user_item"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// LeaderRow is one aggregated leaderboard line.
type LeaderRow struct {
	UserID       int64 `bun:"user_id" json:"user_id"`
	Level        int   `bun:"level" json:"level"`
	Diamonds     int64 `bun:"diamonds" json:"diamonds"`
	Streak       int   `bun:"streak" json:"streak"`
	TotalUpvotes int64 `bun:"total_upvotes" json:"total_upvotes"`
	PostsCount   int64 `bun:"posts_count" json:"posts_count"`
}
