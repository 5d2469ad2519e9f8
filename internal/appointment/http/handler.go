package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/appointment"
	"github.com/kuafor-app/salon-booking-backend/internal/auth"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service appointment.Service
}

func NewHandler(service appointment.Service) *Handler {
	return &Handler{service: service}
}

// Availability lists every slot of a stylist's working day,
// marking the ones that collide with an active appointment.
func (h *Handler) Availability(c *gin.Context) {
	var query AvailabilityRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	slots, err := h.service.DayAvailability(c.Request.Context(), query.StaffID, query.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": query.Date, "slots": slots})
}

// Book creates an appointment for the authenticated customer.
func (h *Handler) Book(c *gin.Context) {
	var body BookRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	booked, err := h.service.Book(c.Request.Context(), appointment.BookParams{
		CustomerID: auth.GetUserID(c),
		StaffID:    body.StaffID,
		StartTime:  body.StartTime,
		ServiceIDs: body.ServiceIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAppointmentResponse(booked))
}

// ListMine returns the customer's upcoming and ongoing appointments.
func (h *Handler) ListMine(c *gin.Context) {
	appointments, err := h.service.ListActiveByCustomer(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": NewAppointmentResponses(appointments)})
}

// ListMineCanceled returns the customer's cancellation history.
func (h *Handler) ListMineCanceled(c *gin.Context) {
	appointments, err := h.service.ListCanceledByCustomer(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": NewAppointmentResponses(appointments)})
}

// Cancel marks the customer's own appointment as canceled.
func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.CancelByCustomer(c.Request.Context(), auth.GetUserID(c), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment canceled"})
}

// StaffDay returns the authenticated staff member's schedule for a day.
func (h *Handler) StaffDay(c *gin.Context) {
	var query StaffDayRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	appointments, err := h.service.StaffDay(c.Request.Context(), auth.GetUserID(c), query.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": query.Date, "items": NewAppointmentResponses(appointments)})
}

// StaffBook registers a walk-in appointment on the staff member's own
// schedule for an existing customer.
func (h *Handler) StaffBook(c *gin.Context) {
	var body StaffBookRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	booked, err := h.service.Book(c.Request.Context(), appointment.BookParams{
		CustomerID: body.CustomerID,
		StaffID:    auth.GetUserID(c),
		StartTime:  body.StartTime,
		ServiceIDs: body.ServiceIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAppointmentResponse(booked))
}

// StaffCancel lets any staff member cancel an appointment.
func (h *Handler) StaffCancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.CancelByStaff(c.Request.Context(), auth.GetUserID(c), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment canceled"})
}
