package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	g.GET("/availability", authMiddleware, h.Availability)

	appointments := g.Group("/appointments")
	appointments.Use(authMiddleware)
	{
		appointments.POST("", h.Book)
		appointments.GET("", h.ListMine)
		appointments.GET("/canceled", h.ListMineCanceled)
		appointments.POST("/:id/cancel", h.Cancel)
	}

	staff := g.Group("/staff")
	staff.Use(authMiddleware, staffMiddleware)
	{
		staff.GET("/appointments", h.StaffDay)
		staff.POST("/appointments", h.StaffBook)
		staff.POST("/appointments/:id/cancel", h.StaffCancel)
	}
}
