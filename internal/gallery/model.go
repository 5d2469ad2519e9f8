package gallery

import (
	"net/http"
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "image not found")
	ErrNotOwner        = apperror.New(http.StatusForbidden, "you do not own this image")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "unsupported image type")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available")
)

// Image is a photo in a staff member's portfolio gallery.
type Image struct {
	ID            string // UUID
	StaffID       string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// FileURL returns the public URL for an image by its ID.
func FileURL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public URL for an image's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
