package http

import (
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/appointment"
)

type BookRequest struct {
	StaffID    string    `json:"staff_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	ServiceIDs []string  `json:"service_ids" binding:"required,min=1,dive,uuid"`
}

// StaffBookRequest lets a staff member register a walk-in booking on behalf
// of an existing customer.
type StaffBookRequest struct {
	CustomerID string    `json:"customer_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	ServiceIDs []string  `json:"service_ids" binding:"required,min=1,dive,uuid"`
}

type AvailabilityRequest struct {
	StaffID string `form:"staff_id" binding:"required,uuid"`
	Date    string `form:"date" binding:"required"`
}

type StaffDayRequest struct {
	Date string `form:"date" binding:"required"`
}

type ServiceLineResponse struct {
	ServiceID       string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

type AppointmentResponse struct {
	ID               string                `json:"id"`
	CustomerID       string                `json:"customer_id"`
	CustomerUsername string                `json:"customer_username"`
	StaffID          string                `json:"staff_id"`
	StaffUsername    string                `json:"staff_username"`
	StartTime        time.Time             `json:"start_time"`
	EndTime          time.Time             `json:"end_time"`
	TotalDuration    int                   `json:"total_duration"`
	FinalPrice       float64               `json:"final_price"`
	Status           string                `json:"status"`
	Services         []ServiceLineResponse `json:"services"`
	CreatedAt        time.Time             `json:"created_at"`
}

func NewAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	services := make([]ServiceLineResponse, len(a.Services))
	for i, line := range a.Services {
		services[i] = ServiceLineResponse{
			ServiceID:       line.ServiceID,
			Name:            line.Name,
			DurationMinutes: line.DurationMinutes,
			Price:           line.Price,
		}
	}

	return AppointmentResponse{
		ID:               a.ID,
		CustomerID:       a.CustomerID,
		CustomerUsername: a.CustomerUsername,
		StaffID:          a.StaffID,
		StaffUsername:    a.StaffUsername,
		StartTime:        a.StartTime,
		EndTime:          a.EndTime(),
		TotalDuration:    a.TotalDuration,
		FinalPrice:       a.FinalPrice,
		Status:           string(a.Status),
		Services:         services,
		CreatedAt:        a.CreatedAt,
	}
}

func NewAppointmentResponses(appointments []*appointment.Appointment) []AppointmentResponse {
	items := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		items[i] = NewAppointmentResponse(a)
	}
	return items
}
