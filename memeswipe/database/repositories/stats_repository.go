package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

type statsRepository struct {
	db bun.IDB
}

func NewStatsRepository(db bun.IDB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	return r.get(ctx, userID, false)
}

func (r *statsRepository) GetForUpdate(ctx context.Context, userID int64) (*models.UserStats, error) {
	return r.get(ctx, userID, true)
}

func (r *statsRepository) get(ctx context.Context, userID int64, lock bool) (*models.UserStats, error) {
	stats := new(models.UserStats)
	q := r.db.NewSelect().
		Model(stats).
		Where("user_id = ?", userID)

	// SQLite has no row locks; its transactions already hold the write lock
	if lock && r.db.Dialect().Name() == dialect.PG {
		q = q.For("UPDATE")
	}

	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "user_stats", ID: userID}
		}
		return nil, wrap("get", "user_stats", err)
	}
	return stats, nil
}

func (r *statsRepository) Create(ctx context.Context, stats *models.UserStats) (bool, error) {
	res, err := r.db.NewInsert().
		Model(stats).
		On("CONFLICT (user_id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, wrap("create", "user_stats", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, wrap("create", "user_stats", err)
	}
	return affected == 1, nil
}

func (r *statsRepository) UpdateStreak(ctx context.Context, userID int64, streak, longest int, lastActive time.Time, now time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserStats)(nil)).
		Set("streak = ?", streak).
		Set("longest_streak = ?", longest).
		Set("last_active_date = ?", lastActive).
		Set("updated_at = ?", now).
		Where("user_id = ?", userID).
		Exec(ctx)
	return wrap("update streak", "user_stats", err)
}

func (r *statsRepository) AddExperience(ctx context.Context, userID int64, delta int64, now time.Time) (*models.UserStats, error) {
	return r.updateReturning(ctx, "add experience", userID, func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("experience = experience + ?", delta).Set("updated_at = ?", now)
	})
}

func (r *statsRepository) RaiseLevel(ctx context.Context, userID int64, newLevel int, now time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserStats)(nil)).
		Set("level = CASE WHEN level < ? THEN ? ELSE level END", newLevel, newLevel).
		Set("updated_at = ?", now).
		Where("user_id = ?", userID).
		Exec(ctx)
	return wrap("raise level", "user_stats", err)
}

func (r *statsRepository) AddDiamonds(ctx context.Context, userID int64, delta int64, now time.Time) (*models.UserStats, error) {
	return r.updateReturning(ctx, "add diamonds", userID, func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("diamonds = diamonds + ?", delta).Set("updated_at = ?", now)
	})
}

func (r *statsRepository) SpendDiamonds(ctx context.Context, userID int64, cost int64, now time.Time) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.UserStats)(nil)).
		Set("diamonds = diamonds - ?", cost).
		Set("updated_at = ?", now).
		Where("user_id = ?", userID).
		Where("diamonds >= ?", cost).
		Exec(ctx)
	if err != nil {
		return false, wrap("spend diamonds", "user_stats", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, wrap("spend diamonds", "user_stats", err)
	}
	return affected == 1, nil
}

func (r *statsRepository) RecordUpload(ctx context.Context, userID int64, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserStats)(nil)).
		Set("posts_count = posts_count + 1").
		Set("last_upload_date = ?", at).
		Set("updated_at = ?", at).
		Where("user_id = ?", userID).
		Exec(ctx)
	return wrap("record upload", "user_stats", err)
}

func (r *statsRepository) updateReturning(ctx context.Context, op string, userID int64, set func(*bun.UpdateQuery) *bun.UpdateQuery) (*models.UserStats, error) {
	stats := new(models.UserStats)
	q := r.db.NewUpdate().Model(stats)
	err := set(q).
		Where("user_id = ?", userID).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "user_stats", ID: userID}
		}
		return nil, wrap(op, "user_stats", err)
	}
	return stats, nil
}
