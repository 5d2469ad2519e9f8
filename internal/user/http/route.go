package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all account and stylist-directory routes.
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	// Public routes
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	stylists := g.Group("/stylists")
	{
		stylists.GET("", h.ListStylists)
		stylists.GET("/:id", h.GetStylist)
		stylists.GET("/:id/avatar", h.Avatar)
	}

	// Authenticated routes
	g.GET("/me", authMiddleware, h.Me)

	// Staff routes
	g.PUT("/me/profile", authMiddleware, staffMiddleware, h.UpdateProfile)
	g.GET("/customers", authMiddleware, staffMiddleware, h.ListCustomers)
}
