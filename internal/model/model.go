// Package model holds the persisted entities.
package model

// All lists every model that Migrate creates tables for.
func All() []any {
	return []any{
		(*User)(nil),
		(*Item)(nil),
	}
}
