package promotion

import (
	"net/http"
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "promotion not found")
	ErrCodeAlreadyUsed = apperror.New(http.StatusConflict, "promotion code already exists")
	ErrCodeRequired    = apperror.New(http.StatusBadRequest, "promotion code is required")
	ErrInvalidDiscount = apperror.New(http.StatusBadRequest, "discount must be between 1 and 100 percent")
)

// Promotion is a discount code administered by staff. Codes are not applied
// to appointment pricing anywhere; this is catalog-style record keeping only.
type Promotion struct {
	ID                 string // UUID
	Code               string
	DiscountPercentage int
	Description        *string
	ExpirationDate     *time.Time
	IsActive           bool
	CreatedAt          time.Time
}
