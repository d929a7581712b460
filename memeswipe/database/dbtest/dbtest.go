// Package dbtest opens throwaway SQLite databases with the engine schema for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
)

// Open creates an empty schema in a file under t.TempDir. File databases keep a real
// connection pool, so concurrent tests contend on SQLite's write lock like production.
func Open(t testing.TB) *database.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.New(ctx, database.DBConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "memeswipe.db"),
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.CreateTables(ctx))
	return db
}

// Store opens a database seeded with the given catalogs and returns its Store.
func Store(t testing.TB, templates []*models.QuestTemplate, items []*models.Item) repositories.Store {
	t.Helper()
	ctx := context.Background()

	db := Open(t)
	if len(templates) > 0 {
		require.NoError(t, database.SeedQuestTemplates(ctx, db.BunDB(), templates))
	}
	if len(items) > 0 {
		require.NoError(t, database.SeedItems(ctx, db.BunDB(), items))
	}
	return repositories.NewStore(db.BunDB())
}
