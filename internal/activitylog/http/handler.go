package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/activitylog"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service activitylog.Service
}

func NewHandler(service activitylog.Service) *Handler {
	return &Handler{service: service}
}

// List returns the audit trail, newest first. Staff only.
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	entries, total, err := h.service.List(c.Request.Context(), activitylog.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = NewEntryResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}
