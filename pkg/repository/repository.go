// Package repository provides a generic CRUD repository over bun models.
//
// A Repository is bound to one table. Base lookups report absence with a
// boolean instead of an error; the OrThrow variants turn absence into a
// NotFound error. Every storage failure leaves the package as a Database
// error carrying the table name and the original cause.
package repository

import (
	"fmt"

	"api-scaffold/pkg/log"

	"github.com/uptrace/bun"
)

const (
	defaultIDColumn        = "id"
	defaultUpdatedAtColumn = "updated_at"
	defaultDeletedAtColumn = "deleted_at"
)

// Config binds a Repository to a table.
type Config struct {
	// Table is the table name used for error context and NotFound messages.
	Table string
	// IDColumn defaults to "id".
	IDColumn string
	// SortColumn defaults to IDColumn.
	SortColumn      string
	UpdatedAtColumn string
	DeletedAtColumn string
}

func (c Config) withDefaults() Config {
	if c.IDColumn == "" {
		c.IDColumn = defaultIDColumn
	}
	if c.SortColumn == "" {
		c.SortColumn = c.IDColumn
	}
	if c.UpdatedAtColumn == "" {
		c.UpdatedAtColumn = defaultUpdatedAtColumn
	}
	if c.DeletedAtColumn == "" {
		c.DeletedAtColumn = defaultDeletedAtColumn
	}
	return c
}

// Repository is a generic CRUD repository for the bun model T keyed by K.
type Repository[T any, K comparable] struct {
	l   log.Logger
	db  bun.IDB
	cfg Config
}

// New binds a repository for T to db.
func New[T any, K comparable](l log.Logger, db bun.IDB, cfg Config) *Repository[T, K] {
	if l == nil {
		l = log.NewNop()
	}
	return &Repository[T, K]{
		l:   l,
		db:  db,
		cfg: cfg.withDefaults(),
	}
}

// WithTx returns a copy of r that runs its queries on tx.
func (r *Repository[T, K]) WithTx(tx bun.IDB) *Repository[T, K] {
	return &Repository[T, K]{l: r.l, db: tx, cfg: r.cfg}
}

// DB returns the handle the repository runs on.
func (r *Repository[T, K]) DB() bun.IDB {
	return r.db
}

// Table returns the bound table name.
func (r *Repository[T, K]) Table() string {
	return r.cfg.Table
}

// inTx reports whether the handle is a transaction, which pins one connection.
func (r *Repository[T, K]) inTx() bool {
	switch r.db.(type) {
	case bun.Tx, *bun.Tx:
		return true
	}
	return false
}

func (r *Repository[T, K]) dsn(op string) string {
	return fmt.Sprintf("repository.%s.%s", r.cfg.Table, op)
}

func (r *Repository[T, K]) resource(name string) string {
	if name != "" {
		return name
	}
	return r.cfg.Table
}
