package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/paginator"
)

// OK sends 200 with data wrapped in the envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Data: data})
}

// OKWithPagination sends 200 with a page of data and its pagination metadata.
func OKWithPagination(c *gin.Context, data any, p paginator.Pagination) {
	c.JSON(http.StatusOK, Resp{Data: data, Pagination: &p})
}

// Created sends 201 with body rendered as-is.
func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// NoContent sends 204 without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders err and aborts the chain. Anything that is not an
// *errors.HTTPError is rendered as 500 without leaking its text.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	resp := Resp{Message: httpErr.Message}
	if !httpErr.Errors.Empty() {
		resp.Errors = httpErr.Errors
	}
	c.AbortWithStatusJSON(httpErr.Status, resp)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		Message: pkgErrors.MessageInternalServerError,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.ErrUnauthorized)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Error(c, pkgErrors.ErrForbidden)
}
