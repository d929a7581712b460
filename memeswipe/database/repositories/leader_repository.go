package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

type leaderRepository struct {
	db bun.IDB
}

func NewLeaderRepository(db bun.IDB) LeaderRepository {
	return &leaderRepository{db: db}
}

func (r *leaderRepository) TopByUpvotes(ctx context.Context, since time.Time, limit int) ([]*models.LeaderRow, error) {
	q := r.db.NewSelect().
		TableExpr("user_stats AS ust").
		ColumnExpr("ust.user_id, ust.level, ust.diamonds, ust.streak").
		ColumnExpr("COALESCE(SUM(p.upvotes), 0) AS total_upvotes").
		ColumnExpr("COUNT(p.id) AS posts_count")

	if since.IsZero() {
		q = q.Join("LEFT JOIN posts AS p ON p.user_id = ust.user_id")
	} else {
		q = q.Join("LEFT JOIN posts AS p ON p.user_id = ust.user_id AND p.created_at >= ?", since)
	}

	var rows []*models.LeaderRow
	err := q.
		GroupExpr("ust.user_id, ust.level, ust.diamonds, ust.streak").
		OrderExpr("total_upvotes DESC, ust.user_id ASC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, wrap("top by upvotes", "posts", err)
	}
	return rows, nil
}
