package repository

import (
	"maps"
	"slices"
	"strings"

	"api-scaffold/pkg/pagination"

	"github.com/uptrace/bun"
)

// SortOrder is the direction of the default sort column.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Where narrows a select query using bun's expression language.
type Where func(q *bun.SelectQuery) *bun.SelectQuery

// Values maps column names to new values for Update.
type Values map[string]any

// QueryOptions controls FindAll and FindAllPaginated.
type QueryOptions struct {
	Pagination pagination.Options
	// SortBy is accepted for API symmetry; results are always ordered by the
	// repository's sort column.
	SortBy    string
	SortOrder SortOrder
	Where     Where
	// Filters are column equality predicates ANDed with Where. A nil value matches NULL.
	Filters map[string]any
}

// And combines predicates. Nil entries are skipped.
func And(wheres ...Where) Where {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, w := range wheres {
			if w != nil {
				q = w(q)
			}
		}
		return q
	}
}

// Eq matches rows whose column equals value.
func Eq(column string, value any) Where {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if value == nil {
			return q.Where("? IS NULL", bun.Ident(column))
		}
		return q.Where("? = ?", bun.Ident(column), value)
	}
}

// IsNull matches rows whose column is NULL.
func IsNull(column string) Where {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? IS NULL", bun.Ident(column))
	}
}

// NotEq matches rows whose column differs from value.
func NotEq(column string, value any) Where {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? <> ?", bun.Ident(column), value)
	}
}

func (o QueryOptions) predicate() Where {
	if len(o.Filters) == 0 {
		return o.Where
	}
	wheres := []Where{o.Where}
	for _, col := range slices.Sorted(maps.Keys(o.Filters)) {
		wheres = append(wheres, Eq(col, o.Filters[col]))
	}
	return And(wheres...)
}

func (o QueryOptions) ascending() bool {
	return strings.EqualFold(string(o.SortOrder), string(SortAsc))
}

func applyWhere(q *bun.SelectQuery, where Where) *bun.SelectQuery {
	if where == nil {
		return q
	}
	return where(q)
}
