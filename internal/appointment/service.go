package appointment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/activitylog"
	"github.com/kuafor-app/salon-booking-backend/internal/catalog"
	"github.com/kuafor-app/salon-booking-backend/internal/user"
)

type BookParams struct {
	CustomerID string
	StaffID    string
	StartTime  time.Time
	ServiceIDs []string
}

type Service interface {
	// Book creates an active appointment for the customer. Totals are
	// computed from the current service catalog and snapshotted so later
	// catalog edits never rewrite history.
	Book(ctx context.Context, params BookParams) (*Appointment, error)

	// DayAvailability returns every bookable slot of the staff member's day
	// with conflicting slots marked as booked.
	DayAvailability(ctx context.Context, staffID string, date string) ([]Slot, error)

	ListActiveByCustomer(ctx context.Context, customerID string) ([]*Appointment, error)
	ListCanceledByCustomer(ctx context.Context, customerID string) ([]*Appointment, error)
	StaffDay(ctx context.Context, staffID string, date string) ([]*Appointment, error)

	CancelByCustomer(ctx context.Context, customerID string, appointmentID string) error
	CancelByStaff(ctx context.Context, staffUserID string, appointmentID string) error
}

// availabilityCache is the slice of pkg/cache the appointment module uses.
// A nil *cache.Cache satisfies it with no-op behavior.
type availabilityCache interface {
	GetJSON(ctx context.Context, key string, dest any) bool
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type service struct {
	repo        Repository
	catalog     catalog.CatalogService
	userService user.Service
	recorder    activitylog.Recorder
	cache       availabilityCache
}

func NewService(
	repo Repository,
	catalogService catalog.CatalogService,
	userService user.Service,
	recorder activitylog.Recorder,
	c availabilityCache,
) Service {
	return &service{
		repo:        repo,
		catalog:     catalogService,
		userService: userService,
		recorder:    recorder,
		cache:       c,
	}
}

func (s *service) Book(ctx context.Context, params BookParams) (*Appointment, error) {
	if len(params.ServiceIDs) == 0 {
		return nil, ErrNoServices
	}

	if _, err := s.userService.GetStaffProfile(ctx, params.StaffID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("load staff profile for booking failed: %w", err)
	}

	// The customer id is caller-supplied on staff-initiated bookings, so it
	// gets the same existence check as the staff id.
	customer, err := s.userService.GetByID(ctx, params.CustomerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer for booking failed: %w", err)
	}
	if customer.Role != user.RoleCustomer {
		return nil, ErrCustomerNotFound
	}

	services, err := s.catalog.GetByIDs(ctx, params.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("load services for booking failed: %w", err)
	}
	if len(services) != len(uniqueIDs(params.ServiceIDs)) {
		return nil, ErrUnknownService
	}

	appointment := &Appointment{
		CustomerID: params.CustomerID,
		StaffID:    params.StaffID,
		StartTime:  params.StartTime.UTC(),
		Status:     StatusActive,
	}
	for _, svc := range services {
		appointment.Services = append(appointment.Services, ServiceLine{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
		appointment.TotalDuration += svc.DurationMinutes
		appointment.FinalPrice += svc.Price
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, appointment.StaffID, appointment.StartTime)
	return appointment, nil
}

func (s *service) DayAvailability(ctx context.Context, staffID string, date string) ([]Slot, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := s.userService.GetStaffProfile(ctx, staffID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("load staff profile for availability failed: %w", err)
	}

	cacheKey := availabilityCacheKey(staffID, day)
	var cached []Slot
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	appointments, err := s.repo.ListForStaffDay(ctx, staffID, day)
	if err != nil {
		return nil, err
	}

	slots := BuildDaySlots(day, appointments)
	s.cache.SetJSON(ctx, cacheKey, slots, time.Minute)

	return slots, nil
}

func (s *service) ListActiveByCustomer(ctx context.Context, customerID string) ([]*Appointment, error) {
	return s.repo.ListByCustomer(ctx, customerID, []Status{StatusActive}, true)
}

func (s *service) ListCanceledByCustomer(ctx context.Context, customerID string) ([]*Appointment, error) {
	return s.repo.ListByCustomer(ctx, customerID, []Status{StatusCanceledByCustomer, StatusCanceledByStaff}, false)
}

func (s *service) StaffDay(ctx context.Context, staffID string, date string) ([]*Appointment, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForStaffDay(ctx, staffID, day)
}

func (s *service) CancelByCustomer(ctx context.Context, customerID string, appointmentID string) error {
	appointment, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.CustomerID != customerID {
		return ErrNotOwner
	}
	if appointment.Status != StatusActive {
		return ErrNotActive
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, StatusCanceledByCustomer); err != nil {
		return err
	}

	details := fmt.Sprintf("appointment %s with %s at %s",
		appointment.ID, appointment.StaffUsername, appointment.StartTime.UTC().Format(time.RFC3339))

	s.invalidateAvailability(ctx, appointment.StaffID, appointment.StartTime)
	if err := s.recorder.Record(ctx, customerID, activitylog.ActionCustomerCanceled, details); err != nil {
		log.Printf("warning: failed to record cancellation of appointment %s: %v", appointmentID, err)
	}
	return nil
}

func (s *service) CancelByStaff(ctx context.Context, staffUserID string, appointmentID string) error {
	appointment, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.Status != StatusActive {
		return ErrNotActive
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, StatusCanceledByStaff); err != nil {
		return err
	}

	details := fmt.Sprintf("appointment %s of customer %s at %s",
		appointment.ID, appointment.CustomerUsername, appointment.StartTime.UTC().Format(time.RFC3339))

	s.invalidateAvailability(ctx, appointment.StaffID, appointment.StartTime)
	if err := s.recorder.Record(ctx, staffUserID, activitylog.ActionStaffCanceled, details); err != nil {
		log.Printf("warning: failed to record cancellation of appointment %s: %v", appointmentID, err)
	}
	return nil
}

func (s *service) invalidateAvailability(ctx context.Context, staffID string, startTime time.Time) {
	s.cache.Delete(ctx, availabilityCacheKey(staffID, startTime))
}

func availabilityCacheKey(staffID string, day time.Time) string {
	return fmt.Sprintf("availability:%s:%s", staffID, day.UTC().Format(DateFormat))
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
