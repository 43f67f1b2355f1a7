package item

import (
	pkgErrors "api-scaffold/pkg/errors"
)

// Resource names items in NotFound errors.
const Resource = "Item"

// ErrDuplicateName reports an item name that is already taken.
func ErrDuplicateName(name string) error {
	return pkgErrors.NewConflict("item name already exists", pkgErrors.WithField("name", name))
}

// ErrNotFound reports a missing or soft-deleted item.
func ErrNotFound(id int64) error {
	return pkgErrors.NewNotFound(Resource, id)
}

// ErrNotOwner reports a change to an item the caller neither owns nor administers.
func ErrNotOwner(id int64) error {
	return pkgErrors.NewAuthorization("Cannot modify another user's item", pkgErrors.WithField("id", id))
}

// ErrInvalidStatus reports a status outside active|inactive.
func ErrInvalidStatus(status string) error {
	return pkgErrors.NewValidation("status must be one of active, inactive", pkgErrors.WithField("status", status))
}
