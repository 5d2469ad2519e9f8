package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/catalog"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service catalog.CatalogService
}

func NewHandler(service catalog.CatalogService) *Handler {
	return &Handler{service: service}
}

// List returns the salon menu ordered by name.
func (h *Handler) List(c *gin.Context) {
	services, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, svc := range services {
		items[i] = NewServiceResponse(svc)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create adds a new service to the menu. Staff only.
func (h *Handler) Create(c *gin.Context) {
	var body CreateServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	svc, err := h.service.Create(c.Request.Context(), catalog.CreateRequest{
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewServiceResponse(svc))
}

// Delete removes a service from the menu. Staff only.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
