package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

const (
	defaultSQLitePath = "data/app.db"
	defaultMaxConns   = 10
	pingTimeout       = 5 * time.Second
)

// Config describes how to reach the database.
type Config struct {
	URL        string
	Driver     string
	SQLitePath string
	MaxConns   int
}

// Resolve returns the effective driver for cfg, preferring an explicit Driver.
func (cfg Config) Resolve() Driver {
	if cfg.Driver != "" {
		return Driver(strings.ToLower(cfg.Driver))
	}
	return DetectDriver(cfg.URL)
}

// Connect opens a bun.DB for cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg Config) (*bun.DB, error) {
	driver := cfg.Resolve()

	var (
		sqldb *sql.DB
		db    *bun.DB
		err   error
	)
	switch driver {
	case DriverPostgres:
		if cfg.URL == "" {
			return nil, ErrMissingURL
		}
		sqldb, err = sql.Open("pgx", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("database: open postgres: %w", err)
		}
		maxConns := cfg.MaxConns
		if maxConns <= 0 {
			maxConns = defaultMaxConns
		}
		sqldb.SetMaxOpenConns(maxConns)
		sqldb.SetMaxIdleConns(maxConns)
		db = bun.NewDB(sqldb, pgdialect.New())
	case DriverSQLite:
		sqldb, err = sql.Open("sqlite", sqliteDSN(cfg))
		if err != nil {
			return nil, fmt.Errorf("database: open sqlite: %w", err)
		}
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY under load.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", driver, err)
	}

	return db, nil
}

// Disconnect closes db. A nil db is a no-op.
func Disconnect(db *bun.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}

func sqliteDSN(cfg Config) string {
	dsn := cfg.SQLitePath
	if dsn == "" {
		dsn = strings.TrimPrefix(cfg.URL, "sqlite://")
	}
	if dsn == "" {
		dsn = defaultSQLitePath
	}
	if dsn == ":memory:" || strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
