package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserStats is the single progression record of a user.
type UserStats struct {
	bun.BaseModel `bun:"table:user_stats,alias:ust"`

	ID             int64      `bun:"id,pk,autoincrement"`
	UserID         int64      `bun:"user_id,notnull,unique"`
	Level          int        `bun:"level,notnull,default:1"`
	Experience     int64      `bun:"experience,notnull,default:0"`
	Diamonds       int64      `bun:"diamonds,notnull,default:0"`
	Streak         int        `bun:"streak,notnull,default:0"`
	LongestStreak  int        `bun:"longest_streak,notnull,default:0"`
	LastActiveDate *time.Time `bun:"last_active_date,type:date"`
	LastUploadDate *time.Time `bun:"last_upload_date"`
	PostsCount     int64      `bun:"posts_count,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// NewUserStats returns a record with every counter at its floor.
func NewUserStats(userID int64, now time.Time) *UserStats {
	return &UserStats{
		UserID:    userID,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
