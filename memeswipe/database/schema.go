package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

// appTables lists every table in creation order.
var appTables = []any{
	(*models.UserStats)(nil),
	(*models.QuestTemplate)(nil),
	(*models.QuestAssignment)(nil),
	(*models.Post)(nil),
	(*models.Vote)(nil),
	(*models.Item)(nil),
	(*models.UserItem)(nil),
}

var appTableNames = []string{
	"user_items",
	"items",
	"votes",
	"posts",
	"quest_assignments",
	"quest_templates",
	"user_stats",
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_quest_assignments_user_id ON quest_assignments(user_id);",
	"CREATE INDEX IF NOT EXISTS idx_quest_assignments_expires ON quest_assignments(user_id, expires_at);",
	"CREATE INDEX IF NOT EXISTS idx_quest_templates_action_kind ON quest_templates(action_kind);",
	"CREATE INDEX IF NOT EXISTS idx_posts_user_id ON posts(user_id);",
	"CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);",
	"CREATE INDEX IF NOT EXISTS idx_votes_post_id ON votes(post_id);",
	"CREATE INDEX IF NOT EXISTS idx_user_items_user_id ON user_items(user_id);",
}

// InitializeSchema creates all tables and indexes and seeds the catalogs.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if err := db.ensureAppMeta(ctx); err != nil {
		return fmt.Errorf("failed to create app_meta: %w", err)
	}

	if v, _ := db.getAppMeta(ctx, "schema_version"); v == strconv.Itoa(schemaVersion) {
		slog.Info("Schema up-to-date, skipping table creation",
			slog.String("type", "db"),
			slog.Int("schema_version", schemaVersion))
	} else if err := db.CreateTables(ctx); err != nil {
		return err
	}

	if err := db.InitializeQuestData(ctx); err != nil {
		return fmt.Errorf("failed to initialize quest data: %w", err)
	}

	if err := db.InitializeItemData(ctx); err != nil {
		return fmt.Errorf("failed to initialize item data: %w", err)
	}

	if err := db.setAppMeta(ctx, "schema_version", strconv.Itoa(schemaVersion)); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return nil
}

// CreateTables creates the tables and indexes without touching the catalogs.
func (db *DB) CreateTables(ctx context.Context) error {
	for _, model := range appTables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func (db *DB) ensureAppMeta(ctx context.Context) error {
	_, err := db.ExecWithLog(ctx, `CREATE TABLE IF NOT EXISTS app_meta (key TEXT PRIMARY KEY, value TEXT)`)
	return err
}

func (db *DB) getAppMeta(ctx context.Context, key string) (string, error) {
	var v string
	err := db.bunDB.NewRaw("SELECT value FROM app_meta WHERE key = ?", key).Scan(ctx, &v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

func (db *DB) setAppMeta(ctx context.Context, key, value string) error {
	_, err := db.bunDB.NewRaw(
		"INSERT INTO app_meta (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	).Exec(ctx)
	return err
}

// ResetAppTables removes every progression row and restarts identities. The catalogs
// are reseeded by the next InitializeSchema.
func (db *DB) ResetAppTables(ctx context.Context) error {
	if db.pool == nil {
		for _, table := range appTableNames {
			if _, err := db.ExecWithLog(ctx, "DELETE FROM "+quoteIdentifier(table)); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		slog.Info("App tables cleared", slog.String("type", "db"), slog.Any("tables", appTableNames))
		return nil
	}

	rows, err := db.pool.Query(ctx, `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'`)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	present := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err == nil {
			present[name] = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	var toTruncate []string
	for _, t := range appTableNames {
		if present[t] {
			toTruncate = append(toTruncate, t)
		}
	}

	if len(toTruncate) == 0 {
		slog.Warn("No app tables found to reset", slog.String("type", "db"))
		return nil
	}

	stmt := "TRUNCATE TABLE " + joinIdentifiers(toTruncate) + " RESTART IDENTITY CASCADE;"
	if _, err := db.ExecWithLog(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	slog.Info("App tables truncated", slog.String("type", "db"), slog.Any("tables", toTruncate))
	return nil
}

func quoteIdentifier(name string) string {
	return fmt.Sprintf("\"%s\"", name)
}

func joinIdentifiers(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += quoteIdentifier(n)
	}
	return out
}
