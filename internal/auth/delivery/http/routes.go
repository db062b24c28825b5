package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the public auth endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/signin", h.SignIn)
}
