package http

import (
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/promotion"
)

type PromotionResponse struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage int        `json:"discount_percentage"`
	Description        *string    `json:"description"`
	ExpirationDate     *time.Time `json:"expiration_date"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewPromotionResponse(p *promotion.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:                 p.ID,
		Code:               p.Code,
		DiscountPercentage: p.DiscountPercentage,
		Description:        p.Description,
		ExpirationDate:     p.ExpirationDate,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
	}
}

type CreatePromotionRequest struct {
	Code               string     `json:"code" binding:"required"`
	DiscountPercentage int        `json:"discount_percentage" binding:"required,min=1,max=100"`
	Description        string     `json:"description"`
	ExpirationDate     *time.Time `json:"expiration_date" time_format:"2006-01-02"`
}
