package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/scope"
)

// processScope returns the caller identity set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (scope.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return scope.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "item.delivery.http.processCreateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processListReq binds the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "item.delivery.http.processListReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processUpdateReq binds the patch body and the id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "item.delivery.http.processUpdateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	req.ID = c.Param("id")
	return req, nil
}
