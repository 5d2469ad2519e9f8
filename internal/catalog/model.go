package catalog

import (
	"net/http"
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "service name is required")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price must not be negative")
)

// Service is an offering on the salon menu (haircut, coloring, ...).
// Appointments denormalize duration and price at booking time, so editing or
// deleting a catalog entry never rewrites history.
type Service struct {
	ID              string // UUID
	Name            string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
}
