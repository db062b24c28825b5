package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/item"
	"inventory-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires a bearer token and the matching item permission.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth())
	{
		items.POST("", mw.Permission(item.PermCreate), h.Create)
		items.GET("", mw.Permission(item.PermRead), h.List)
		items.GET("/:id", mw.Permission(item.PermRead), h.Detail)
		items.PATCH("/:id", mw.Permission(item.PermUpdate), h.Update)
		items.PATCH("/:id/archive", mw.Permission(item.PermArchive), h.Archive)
		items.PATCH("/:id/restore", mw.Permission(item.PermRestore), h.Restore)
		items.DELETE("/:id", mw.Permission(item.PermDelete), h.Delete)
	}
}
