package http

import (
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/catalog"
)

type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewServiceResponse(svc *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		CreatedAt:       svc.CreatedAt,
	}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1"`
	Price           float64 `json:"price" binding:"min=0"`
}
