package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// DefaultTxTimeout bounds a single engine action.
const DefaultTxTimeout = 10 * time.Second

type bunStore struct {
	db      *bun.DB
	timeout time.Duration
	read    *Repositories
}

// NewStore returns a Store backed by db.
func NewStore(db *bun.DB) Store {
	return &bunStore{
		db:      db,
		timeout: DefaultTxTimeout,
		read:    NewRepositories(db),
	}
}

// NewRepositories binds every repository to db, which may be a transaction.
func NewRepositories(db bun.IDB) *Repositories {
	return &Repositories{
		Stats:   NewStatsRepository(db),
		Quests:  NewQuestRepository(db),
		Posts:   NewPostRepository(db),
		Items:   NewItemRepository(db),
		Leaders: NewLeaderRepository(db),
	}
}

func (s *bunStore) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.db.RunInTx(timeoutCtx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}

func (s *bunStore) Read() *Repositories {
	return s.read
}

