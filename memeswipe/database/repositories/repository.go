package repositories

import (
	"context"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

// StatsRepository owns user_stats. Counter updates are relative so concurrent writers
// never lose each other's deltas.
type StatsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error)
	// GetForUpdate reads the row and, where the store supports it, locks it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, userID int64) (*models.UserStats, error)
	// Create inserts stats unless the user already has a row. It reports whether a row
	// was inserted.
	Create(ctx context.Context, stats *models.UserStats) (bool, error)
	UpdateStreak(ctx context.Context, userID int64, streak, longest int, lastActive time.Time, now time.Time) error
	AddExperience(ctx context.Context, userID int64, delta int64, now time.Time) (*models.UserStats, error)
	// RaiseLevel sets level to max(level, newLevel).
	RaiseLevel(ctx context.Context, userID int64, newLevel int, now time.Time) error
	AddDiamonds(ctx context.Context, userID int64, delta int64, now time.Time) (*models.UserStats, error)
	// SpendDiamonds debits cost only when the balance covers it and reports whether it did.
	SpendDiamonds(ctx context.Context, userID int64, cost int64, now time.Time) (bool, error)
	RecordUpload(ctx context.Context, userID int64, at time.Time) error
}

type QuestRepository interface {
	ListTemplates(ctx context.Context) ([]*models.QuestTemplate, error)
	// ListAssignments returns the user's assignments with their templates, open ones first.
	ListAssignments(ctx context.Context, userID int64) ([]*models.QuestAssignment, error)
	GetAssignment(ctx context.Context, userID, templateID int64) (*models.QuestAssignment, error)
	DeleteAssignments(ctx context.Context, userID int64) error
	// InsertAssignments ignores rows that already exist for (user, template) and returns
	// how many were inserted.
	InsertAssignments(ctx context.Context, assignments []*models.QuestAssignment) (int64, error)
	// ListOpenByKind returns unexpired, uncompleted assignments for templates of kind.
	ListOpenByKind(ctx context.Context, userID int64, kind models.ActionKind, now time.Time) ([]*models.QuestAssignment, error)
	IncrementProgress(ctx context.Context, assignmentID int64, delta int) (int, error)
	SetProgress(ctx context.Context, assignmentID int64, progress int) (int, error)
	// MarkCompleted flips completed from false to true and reports whether this call did it.
	MarkCompleted(ctx context.Context, assignmentID int64) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	// InsertVote returns false when the user already voted on the post.
	InsertVote(ctx context.Context, vote *models.Vote) (bool, error)
	IncrementVoteCount(ctx context.Context, postID int64, kind models.VoteKind) error
	TotalUpvotesForUser(ctx context.Context, userID int64) (int64, error)
	RandomUnvoted(ctx context.Context, userID int64) (*models.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Post, error)
}

type ItemRepository interface {
	List(ctx context.Context) ([]*models.Item, error)
	GetByID(ctx context.Context, itemID int64) (*models.Item, error)
	ListOwned(ctx context.Context, userID int64) ([]*models.Item, error)
	// Grant returns false when the user already owns the item.
	Grant(ctx context.Context, userID, itemID int64, now time.Time) (bool, error)
	OwnsByName(ctx context.Context, userID int64, name string) (bool, error)
}

type LeaderRepository interface {
	// TopByUpvotes counts posts created at or after since; a zero since counts all.
	TopByUpvotes(ctx context.Context, since time.Time, limit int) ([]*models.LeaderRow, error)
}

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Stats   StatsRepository
	Quests  QuestRepository
	Posts   PostRepository
	Items   ItemRepository
	Leaders LeaderRepository
}

// Store is the single transactional boundary of the engine.
type Store interface {
	// RunInTx runs fn in one transaction. Any error from fn rolls back every write.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
	// Read returns repositories for reads outside a transaction.
	Read() *Repositories
}
