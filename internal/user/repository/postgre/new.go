package postgre

import (
	"fmt"
	"time"

	"api-scaffold/internal/model"
	"api-scaffold/internal/user/repository"
	"api-scaffold/pkg/database"
	"api-scaffold/pkg/log"
	genericRepo "api-scaffold/pkg/repository"

	"github.com/uptrace/bun"
)

const (
	tableUsers = "users"

	updateRetries    = 2
	updateRetryDelay = 50 * time.Millisecond
)

type implRepository struct {
	db    bun.IDB
	l     log.Logger
	users *genericRepo.Repository[model.User, int64]
	retry []database.RetryOption
}

// New creates a new SQL-backed Repository for the user domain.
func New(db bun.IDB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{
		db: db,
		l:  l,
		users: genericRepo.New[model.User, int64](l, db, genericRepo.Config{
			Table:      tableUsers,
			SortColumn: "created_at",
		}),
		retry: []database.RetryOption{
			database.WithMaxRetries(updateRetries),
			database.WithRetryDelay(updateRetryDelay),
		},
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/postgre.%s", method)
}
