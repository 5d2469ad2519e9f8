package activitylog

import (
	"time"
)

// Actions recorded by the appointment lifecycle. Bookings themselves are not
// logged; only cancellations are, matching the audit trail staff review.
const (
	ActionCustomerCanceled = "customer_canceled_appointment"
	ActionStaffCanceled    = "staff_canceled_appointment"
)

// Entry is one row in the salon's audit trail.
type Entry struct {
	ID            string // UUID
	ActorID       string
	ActorUsername string
	Action        string
	Details       string
	CreatedAt     time.Time
}

// Filter defines pagination for listing entries.
type Filter struct {
	Page     int
	PageSize int
}
