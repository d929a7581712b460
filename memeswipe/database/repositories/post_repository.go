package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

type postRepository struct {
	db bun.IDB
}

func NewPostRepository(db bun.IDB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	_, err := r.db.NewInsert().Model(post).Exec(ctx)
	return wrap("create", "posts", err)
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	post := new(models.Post)
	err := r.db.NewSelect().
		Model(post).
		Where("p.id = ?", postID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "post", ID: postID}
		}
		return nil, wrap("get", "posts", err)
	}
	return post, nil
}

func (r *postRepository) InsertVote(ctx context.Context, vote *models.Vote) (bool, error) {
	res, err := r.db.NewInsert().
		Model(vote).
		On("CONFLICT (user_id, post_id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, wrap("insert", "votes", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, wrap("insert", "votes", err)
	}
	return affected == 1, nil
}

func (r *postRepository) IncrementVoteCount(ctx context.Context, postID int64, kind models.VoteKind) error {
	column := "downvotes"
	if kind == models.VoteUp {
		column = "upvotes"
	}

	_, err := r.db.NewUpdate().
		Model((*models.Post)(nil)).
		Set("? = ? + 1", bun.Ident(column), bun.Ident(column)).
		Where("id = ?", postID).
		Exec(ctx)
	return wrap("increment "+column, "posts", err)
}

func (r *postRepository) TotalUpvotesForUser(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := r.db.NewSelect().
		Model((*models.Post)(nil)).
		ColumnExpr("COALESCE(SUM(p.upvotes), 0)").
		Where("p.user_id = ?", userID).
		Scan(ctx, &total)
	if err != nil {
		return 0, wrap("sum upvotes", "posts", err)
	}
	return total, nil
}

func (r *postRepository) RandomUnvoted(ctx context.Context, userID int64) (*models.Post, error) {
	voted := r.db.NewSelect().
		Model((*models.Vote)(nil)).
		Column("v.post_id").
		Where("v.user_id = ?", userID)

	post := new(models.Post)
	err := r.db.NewSelect().
		Model(post).
		Where("p.user_id != ?", userID).
		Where("p.id NOT IN (?)", voted).
		OrderExpr("RANDOM()").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "unvoted post", ID: userID}
		}
		return nil, wrap("random unvoted", "posts", err)
	}
	return post, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.NewSelect().
		Model(&posts).
		Where("p.user_id = ?", userID).
		Order("p.created_at DESC", "p.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrap("list", "posts", err)
	}
	return posts, nil
}
