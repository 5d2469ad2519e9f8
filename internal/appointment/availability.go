package appointment

import (
	"time"
)

// The salon working window. Slots start every 30 minutes from opening, the
// last one at 20:30.
const (
	OpeningHour  = 9
	ClosingHour  = 21
	SlotDuration = 30 * time.Minute

	// DateFormat is the wire format for calendar dates.
	DateFormat = "2006-01-02"
)

// Slot is one bookable interval of the working day.
type Slot struct {
	StartTime time.Time `json:"start_time"`
	Booked    bool      `json:"booked"`
}

// ParseDate parses a YYYY-MM-DD calendar date. Dates are naive wall-clock
// values kept in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// BuildDaySlots computes the full slot sequence of a working day, marking
// each slot booked when its interval intersects any active appointment.
// Interval overlap is used rather than slot-set membership, so appointments
// whose duration is not a multiple of the slot size still block every slot
// they touch.
func BuildDaySlots(date time.Time, appointments []*Appointment) []Slot {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), OpeningHour, 0, 0, 0, time.UTC)
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), ClosingHour, 0, 0, 0, time.UTC)

	slotCount := int(dayEnd.Sub(dayStart) / SlotDuration)
	slots := make([]Slot, 0, slotCount)

	for start := dayStart; start.Before(dayEnd); start = start.Add(SlotDuration) {
		slotEnd := start.Add(SlotDuration)

		booked := false
		for _, a := range appointments {
			if a.Status != StatusActive {
				continue
			}
			// Intervals overlap iff each starts before the other ends.
			if a.StartTime.Before(slotEnd) && a.EndTime().After(start) {
				booked = true
				break
			}
		}

		slots = append(slots, Slot{StartTime: start, Booked: booked})
	}

	return slots
}
