package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
	schemaVersion        = 1 // bump when schema changes
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type DBConfig struct {
	Driver       string `toml:"driver" env:"DRIVER"`
	Host         string `toml:"host" env:"HOST"`
	Port         int    `toml:"port" env:"PORT"`
	User         string `toml:"user" env:"USER"`
	Password     string `toml:"password" env:"PASSWORD"`
	Database     string `toml:"database" env:"NAME"`
	SSLMode      string `toml:"ssl_mode" env:"SSL_MODE"`
	Path         string `toml:"path" env:"PATH"`
	PoolSize     int    `toml:"pool_size" env:"POOL_SIZE"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	MaxLifetime  int    `toml:"max_lifetime" env:"MAX_LIFETIME"`
}

// DB owns the bun handle and, on Postgres, the pgx pool used for raw statements.
type DB struct {
	pool   *pgxpool.Pool
	bunDB  *bun.DB
	driver string
}

// New opens the database selected by cfg.Driver.
func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return newPostgres(ctx, cfg)
	case DriverSQLite:
		return newSQLite(ctx, cfg)
	case DriverMemory:
		return newMemory(ctx)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newPostgres(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	for i := 0; i < defaultMaxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(buildConnString(cfg))))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}

	bunDB := bun.NewDB(sqldb, pgdialect.New())
	bunDB.AddQueryHook(NewQueryHook())

	return &DB{pool: pool, bunDB: bunDB, driver: DriverPostgres}, nil
}

func newSQLite(ctx context.Context, cfg DBConfig) (*DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	// _txlock=immediate takes the write lock at BEGIN
	dsn := "file:" + filepath.Clean(cfg.Path) +
		"?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	return openSQLite(ctx, dsn, cfg.PoolSize)
}

// newMemory opens a private in-memory SQLite database. Every connection to :memory:
// would see its own empty database, so the pool is pinned to one connection.
func newMemory(ctx context.Context) (*DB, error) {
	db, err := openSQLite(ctx, ":memory:?_pragma=foreign_keys(1)", 1)
	if err != nil {
		return nil, err
	}
	db.driver = DriverMemory
	return db, nil
}

func openSQLite(ctx context.Context, dsn string, maxConns int) (*DB, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if maxConns > 0 {
		sqldb.SetMaxOpenConns(maxConns)
	}
	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	bunDB.AddQueryHook(NewQueryHook())

	return &DB{bunDB: bunDB, driver: DriverSQLite}, nil
}

func buildConnString(cfg DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode,
	)
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Driver() string {
	return db.driver
}

// IsPostgres reports whether row locks are available.
func (db *DB) IsPostgres() bool {
	return db.bunDB.Dialect().Name() == dialect.PG
}

// ExecWithLog runs a raw statement without arguments and logs its outcome.
func (db *DB) ExecWithLog(ctx context.Context, query string) (int64, error) {
	start := time.Now()

	var (
		affected int64
		err      error
	)
	if db.pool != nil {
		var tag pgconn.CommandTag
		tag, err = db.pool.Exec(ctx, query)
		affected = tag.RowsAffected()
	} else {
		var res sql.Result
		res, err = db.bunDB.ExecContext(ctx, query)
		if err == nil {
			affected, _ = res.RowsAffected()
		}
	}
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", query),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return 0, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", query),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", affected),
	)
	return affected, nil
}

// Ping verifies every open connection.
func (db *DB) Ping(ctx context.Context) error {
	if db.pool != nil {
		if err := db.pool.Ping(ctx); err != nil {
			return fmt.Errorf("pgxpool ping failed: %w", err)
		}
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}
