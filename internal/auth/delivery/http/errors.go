package http

import (
	"errors"

	"inventory-management/internal/auth"
	pkgErrors "inventory-management/pkg/errors"
)

// mapError translates auth use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var vErr *pkgErrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkgErrors.NewUnprocessable(vErr.Fields)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
