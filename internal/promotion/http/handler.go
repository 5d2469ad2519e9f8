package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/response"
	"github.com/kuafor-app/salon-booking-backend/internal/promotion"
)

type Handler struct {
	service promotion.Service
}

func NewHandler(service promotion.Service) *Handler {
	return &Handler{service: service}
}

// List returns all promotion codes, active first.
func (h *Handler) List(c *gin.Context) {
	promos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PromotionResponse, len(promos))
	for i, p := range promos {
		items[i] = NewPromotionResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create registers a new promotion code.
func (h *Handler) Create(c *gin.Context) {
	var body CreatePromotionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), promotion.CreateRequest{
		Code:               body.Code,
		DiscountPercentage: body.DiscountPercentage,
		Description:        body.Description,
		ExpirationDate:     body.ExpirationDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPromotionResponse(p))
}

// Deactivate marks a promotion code inactive without deleting it.
func (h *Handler) Deactivate(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a promotion code.
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
