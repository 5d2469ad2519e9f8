package appointment

import (
	"net/http"
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "appointment not found")
	ErrNoServices       = apperror.New(http.StatusBadRequest, "select at least one service")
	ErrUnknownService   = apperror.New(http.StatusBadRequest, "one or more selected services do not exist")
	ErrStaffNotFound    = apperror.New(http.StatusNotFound, "staff member not found")
	ErrCustomerNotFound = apperror.New(http.StatusNotFound, "customer not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "you can only cancel your own appointments")
	ErrNotActive        = apperror.New(http.StatusConflict, "appointment is not active")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
)

// Status is the appointment lifecycle state. Transitions are one way:
// active -> canceled_by_customer | canceled_by_staff. Canceled states are
// terminal; there is no resurrection and no completion state.
type Status string

const (
	StatusActive             Status = "active"
	StatusCanceledByCustomer Status = "canceled_by_customer"
	StatusCanceledByStaff    Status = "canceled_by_staff"
)

// ServiceLine is the snapshot of one salon service taken at booking time.
// It survives later catalog edits and deletions unchanged.
type ServiceLine struct {
	ServiceID       string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// Appointment is a booked visit: one customer, one staff member, one start
// time, and the denormalized total of the selected services.
type Appointment struct {
	ID               string // UUID
	CustomerID       string
	CustomerUsername string
	StaffID          string
	StaffUsername    string
	StartTime        time.Time
	TotalDuration    int // minutes, sum of service lines
	FinalPrice       float64
	Status           Status
	Services         []ServiceLine
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EndTime returns the exclusive end of the appointment interval.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.TotalDuration) * time.Minute)
}
