package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "inventory-management/pkg/errors"
)

// processSignInReq binds the sign-in body. Malformed JSON is a 400.
func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "auth.delivery.http.processSignInReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
