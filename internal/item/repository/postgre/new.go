// Package postgre is the SQL implementation of the item repository. It runs
// through bun, so the same code serves the postgres and sqlite dialects.
package postgre

import (
	"fmt"

	"api-scaffold/internal/item"
	"api-scaffold/internal/item/repository"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/log"
	genericRepo "api-scaffold/pkg/repository"

	"github.com/uptrace/bun"
)

const tableItems = "items"

type implRepository struct {
	db    bun.IDB
	l     log.Logger
	items *genericRepo.Repository[model.Item, int64]
}

// New creates a new SQL-backed Repository for the item domain.
func New(db bun.IDB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/postgre: db is required")
	}
	return &implRepository{
		db: db,
		l:  l,
		items: genericRepo.New[model.Item, int64](l, db, genericRepo.Config{
			Table:      tableItems,
			SortColumn: "created_at",
		}),
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/postgre.%s", method)
}

func notFound(id int64) error {
	return item.ErrNotFound(id)
}
