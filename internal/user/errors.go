package user

import (
	pkgErrors "api-scaffold/pkg/errors"
)

// Resource names users in NotFound errors.
const Resource = "User"

// ErrDuplicateEmail reports an email that belongs to another user.
func ErrDuplicateEmail(email string) error {
	return pkgErrors.NewConflict("email already registered", pkgErrors.WithField("email", email))
}

func ErrNotFound(id int64) error {
	return pkgErrors.NewNotFound(Resource, id)
}

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong
// password. Both cases share one message.
func ErrInvalidCredentials() error {
	return pkgErrors.NewAuthentication("Invalid email or password")
}

func ErrInvalidRole(role string) error {
	return pkgErrors.NewValidation("role must be one of user, admin", pkgErrors.WithField("role", role))
}
