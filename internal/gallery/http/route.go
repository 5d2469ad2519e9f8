package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	// Public file serving
	files := g.Group("/files")
	{
		files.GET("/:id", h.ServeFile)
		files.GET("/:id/thumbnail", h.ServeThumbnail)
	}

	// Staff-managed gallery
	mine := g.Group("/me/gallery")
	mine.Use(authMiddleware, staffMiddleware)
	{
		mine.GET("", h.ListMine)
		mine.POST("", h.Upload)
		mine.DELETE("/:id", h.Delete)
	}
}
