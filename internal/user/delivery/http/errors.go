package http

import (
	pkgErrors "api-scaffold/pkg/errors"
)

func errAuthRequired() error {
	return pkgErrors.NewAuthentication("Authentication required")
}

func errNotOwner(id int64) error {
	return pkgErrors.NewAuthorization("Cannot access another user's account", pkgErrors.WithField("id", id))
}

func errRoleChange() error {
	return pkgErrors.NewAuthorization("Only admins can change roles")
}
