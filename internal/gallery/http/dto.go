package http

import (
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/gallery"
)

// ImageResponse is the API shape of a gallery image.
type ImageResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewImageResponse(img *gallery.Image) ImageResponse {
	var thumbURL *string
	if img.ThumbnailPath != nil {
		u := gallery.ThumbnailURL(img.ID)
		thumbURL = &u
	}

	return ImageResponse{
		ID:           img.ID,
		URL:          gallery.FileURL(img.ID),
		ThumbnailURL: thumbURL,
		Filename:     img.Filename,
		ContentType:  img.ContentType,
		Size:         img.Size,
		CreatedAt:    img.CreatedAt,
	}
}

// NewImageResponses maps a slice of images to the API shape.
func NewImageResponses(images []*gallery.Image) []ImageResponse {
	items := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		items = append(items, NewImageResponse(img))
	}
	return items
}
