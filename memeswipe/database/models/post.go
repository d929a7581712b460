package models

import (
	"time"

	"github.com/uptrace/bun"
)

type VoteKind string

const (
	VoteUp   VoteKind = "upvote"
	VoteDown VoteKind = "downvote"
)

func (k VoteKind) Valid() bool {
	return k == VoteUp || k == VoteDown
}

// Post is an uploaded meme. Only the counters matter to progression.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64     `bun:"user_id,notnull" json:"user_id"`
	ImageURL  string    `bun:"image_url,notnull" json:"image_url"`
	Upvotes   int64     `bun:"upvotes,notnull,default:0" json:"upvotes"`
	Downvotes int64     `bun:"downvotes,notnull,default:0" json:"downvotes"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// Vote records that a user voted on a post. At most one per (user, post).
type Vote struct {
	bun.BaseModel `bun:"table:votes,alias:v"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:user_post"`
	PostID    int64     `bun:"post_id,notnull,unique:user_post"`
	Kind      VoteKind  `bun:"vote_kind,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
