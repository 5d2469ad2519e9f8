package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/auth"
	"github.com/kuafor-app/salon-booking-backend/internal/gallery"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service gallery.Service
}

func NewHandler(service gallery.Service) *Handler {
	return &Handler{service: service}
}

// Upload stores a new gallery image for the calling staff member.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	staffID := auth.GetUserID(c)

	img, err := h.service.Upload(c.Request.Context(), header, staffID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewImageResponse(img))
}

// Delete removes a gallery image owned by the calling staff member.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	staffID := auth.GetUserID(c)

	if err := h.service.Delete(c.Request.Context(), req.ID, staffID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMine lists the calling staff member's gallery.
func (h *Handler) ListMine(c *gin.Context) {
	staffID := auth.GetUserID(c)

	images, err := h.service.ListByStaff(c.Request.Context(), staffID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": NewImageResponses(images)})
}

// ServeFile streams the original image. Public.
func (h *Handler) ServeFile(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	stream, img, err := h.service.Download(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, img.Size, img.ContentType, stream, nil)
}

// ServeThumbnail streams the image thumbnail. Public.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always encoded as JPEG; size is unknown up front.
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}
