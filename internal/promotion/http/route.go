package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/promotions")
	group.Use(authMiddleware, staffMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.POST("/:id/deactivate", h.Deactivate)
		group.DELETE("/:id", h.Delete)
	}
}
