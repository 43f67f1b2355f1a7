package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Migrate creates the tables backing models when they do not exist yet.
// Models are pointers to bun models, e.g. (*model.Item)(nil).
func Migrate(ctx context.Context, db bun.IDB, models ...any) error {
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("database: create table for %T: %w", m, err)
		}
	}
	return nil
}
