package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/services")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", staffMiddleware, h.Create)
		group.DELETE("/:id", staffMiddleware, h.Delete)
	}
}
