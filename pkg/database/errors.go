package database

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrUnsupportedDriver = errors.New("database: unsupported driver")
	ErrMissingURL        = errors.New("database: postgres requires a connection url")
)

// IsNoRows reports whether err means a query matched no rows, for both pgx and database/sql.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
