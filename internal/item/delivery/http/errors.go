package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"inventory-management/internal/item"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a plain 500; the cause stays in the logs.
func (h *handler) mapError(err error) error {
	var vErr *pkgErrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkgErrors.NewUnprocessable(vErr.Fields)
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.ErrNotFound
	case errors.Is(err, item.ErrInvalidScope):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// fail renders err for op. Only unexpected errors are logged at error level.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	h.l.Debugf(ctx, "%s: %v", op, err)
	response.Error(c, mapped)
}
