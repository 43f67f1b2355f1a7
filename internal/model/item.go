package model

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
)

// Item is a named resource owned by a user.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:i" json:"-"`

	ID          int64      `bun:"id,pk,autoincrement" json:"id"`
	OwnerID     *int64     `bun:"owner_id" json:"owner_id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Description string     `bun:"description,notnull" json:"description"`
	Status      string     `bun:"status,notnull,default:'active'" json:"status"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt   *time.Time `bun:"deleted_at" json:"deleted_at"`
}

// IsDeleted reports whether the item has been soft deleted.
func (i Item) IsDeleted() bool {
	return i.DeletedAt != nil
}

// OwnedBy reports whether userID owns the item.
func (i Item) OwnedBy(userID int64) bool {
	return i.OwnerID != nil && *i.OwnerID == userID
}
