package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kuafor-app/salon-booking-backend/internal/catalog"
	"github.com/kuafor-app/salon-booking-backend/internal/user"
)

type fakeRepo struct {
	appointments map[string]*Appointment
	nextID       int
	createErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: map[string]*Appointment{}}
}

func (r *fakeRepo) Create(_ context.Context, a *Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = time.Now().UTC().Format("20060102") + "-" + string(rune('a'+r.nextID))
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	copied := *a
	r.appointments[a.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) ListByCustomer(_ context.Context, customerID string, statuses []Status, _ bool) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range r.appointments {
		if a.CustomerID != customerID {
			continue
		}
		for _, st := range statuses {
			if a.Status == st {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) ListForStaffDay(_ context.Context, staffID string, date time.Time) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range r.appointments {
		if a.StaffID == staffID && a.StartTime.Year() == date.Year() && a.StartTime.YearDay() == date.YearDay() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	a, ok := r.appointments[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	return nil
}

type fakeCatalog struct {
	services map[string]*catalog.Service
}

func (c *fakeCatalog) Create(context.Context, catalog.CreateRequest) (*catalog.Service, error) {
	panic("not used")
}

func (c *fakeCatalog) GetByIDs(_ context.Context, ids []string) ([]*catalog.Service, error) {
	var out []*catalog.Service
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if svc, ok := c.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (c *fakeCatalog) List(context.Context) ([]*catalog.Service, error) { panic("not used") }
func (c *fakeCatalog) Delete(context.Context, string) error            { panic("not used") }

type fakeUsers struct {
	users map[string]*user.User
	err   error // when set, every lookup fails with it
}

func (u *fakeUsers) GetStaffProfile(_ context.Context, id string) (*user.User, error) {
	if u.err != nil {
		return nil, u.err
	}
	if s, ok := u.users[id]; ok && s.Role == user.RoleStaff {
		return s, nil
	}
	return nil, user.ErrNotFound
}

func (u *fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if u.err != nil {
		return nil, u.err
	}
	if s, ok := u.users[id]; ok {
		return s, nil
	}
	return nil, user.ErrNotFound
}

func (u *fakeUsers) Register(context.Context, string, string, string, string) (*user.User, error) {
	panic("not used")
}
func (u *fakeUsers) Login(context.Context, string, string) (*user.User, error) { panic("not used") }
func (u *fakeUsers) ListStaff(context.Context) ([]*user.User, error)           { panic("not used") }
func (u *fakeUsers) ListCustomers(context.Context, user.Filter) ([]*user.User, int, error) {
	panic("not used")
}
func (u *fakeUsers) UpdateProfile(context.Context, string, *string, *multipart.FileHeader) (*user.User, error) {
	panic("not used")
}
func (u *fakeUsers) OpenProfilePicture(context.Context, string) (io.ReadCloser, error) {
	panic("not used")
}

// memoryCache is an in-process availability cache with the same contract as
// pkg/cache: silent misses, best-effort writes.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, dest any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.data[key] = raw
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) {
	for _, k := range keys {
		delete(m.data, k)
	}
}

type recordedEntry struct {
	actorID string
	action  string
	details string
}

type fakeRecorder struct {
	entries []recordedEntry
}

func (r *fakeRecorder) Record(_ context.Context, actorID, action, details string) error {
	r.entries = append(r.entries, recordedEntry{actorID: actorID, action: action, details: details})
	return nil
}

const (
	testStaffID    = "11111111-1111-1111-1111-111111111111"
	testCustomerID = "22222222-2222-2222-2222-222222222222"
	cutID          = "33333333-3333-3333-3333-333333333333"
	colorID        = "44444444-4444-4444-4444-444444444444"
)

type testDeps struct {
	repo     *fakeRepo
	recorder *fakeRecorder
	users    *fakeUsers
	cache    *memoryCache
}

func newTestService(t *testing.T) (Service, *fakeRepo, *fakeRecorder) {
	t.Helper()
	svc, deps := newTestServiceDeps(t)
	return svc, deps.repo, deps.recorder
}

func newTestServiceDeps(t *testing.T) (Service, *testDeps) {
	t.Helper()

	deps := &testDeps{
		repo:     newFakeRepo(),
		recorder: &fakeRecorder{},
		users: &fakeUsers{users: map[string]*user.User{
			testStaffID:    {ID: testStaffID, Username: "marco", Role: user.RoleStaff},
			testCustomerID: {ID: testCustomerID, Username: "alice", Role: user.RoleCustomer},
		}},
		cache: newMemoryCache(),
	}
	catalogFake := &fakeCatalog{services: map[string]*catalog.Service{
		cutID:   {ID: cutID, Name: "Haircut", DurationMinutes: 30, Price: 50},
		colorID: {ID: colorID, Name: "Coloring", DurationMinutes: 90, Price: 100},
	}}

	svc := NewService(deps.repo, catalogFake, deps.users, deps.recorder, deps.cache)
	return svc, deps
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)

	t.Run("totals and snapshot come from the selected services", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		booked, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID, colorID},
		})
		require.NoError(t, err)

		require.Equal(t, 120, booked.TotalDuration)
		require.Equal(t, 150.0, booked.FinalPrice)
		require.Equal(t, StatusActive, booked.Status)
		require.Equal(t, start.Add(2*time.Hour), booked.EndTime())
		require.Len(t, booked.Services, 2)
	})

	t.Run("empty service selection is rejected", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
		})
		require.ErrorIs(t, err, ErrNoServices)
		require.Empty(t, repo.appointments)
	})

	t.Run("unknown service id is rejected", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID, "99999999-9999-9999-9999-999999999999"},
		})
		require.ErrorIs(t, err, ErrUnknownService)
		require.Empty(t, repo.appointments)
	})

	t.Run("unknown staff member is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    "99999999-9999-9999-9999-999999999999",
			StartTime:  start,
			ServiceIDs: []string{cutID},
		})
		require.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("unknown customer is rejected before persisting", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Book(ctx, BookParams{
			CustomerID: "99999999-9999-9999-9999-999999999999",
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID},
		})
		require.ErrorIs(t, err, ErrCustomerNotFound)
		require.Empty(t, repo.appointments)
	})

	t.Run("a staff account cannot be named as the customer", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testStaffID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID},
		})
		require.ErrorIs(t, err, ErrCustomerNotFound)
		require.Empty(t, repo.appointments)
	})

	t.Run("user lookup infrastructure failure is not reported as not found", func(t *testing.T) {
		svc, deps := newTestServiceDeps(t)
		deps.users.err = errors.New("connection refused")

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID},
		})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrStaffNotFound)
		require.NotErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("repository conflict surfaces unchanged", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.createErr = ErrTimeConflict

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID},
		})
		require.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("duplicate service ids are counted once", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		booked, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID, cutID},
		})
		require.NoError(t, err)
		require.Equal(t, 30, booked.TotalDuration)
		require.Len(t, booked.Services, 1)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)

	book := func(t *testing.T, svc Service) *Appointment {
		t.Helper()
		booked, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  start,
			ServiceIDs: []string{cutID},
		})
		require.NoError(t, err)
		return booked
	}

	t.Run("customer cancels own appointment and it is logged once", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		booked := book(t, svc)

		require.NoError(t, svc.CancelByCustomer(ctx, testCustomerID, booked.ID))
		require.Equal(t, StatusCanceledByCustomer, repo.appointments[booked.ID].Status)

		require.Len(t, recorder.entries, 1)
		require.Equal(t, testCustomerID, recorder.entries[0].actorID)
	})

	t.Run("customer cannot cancel someone else's appointment", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		booked := book(t, svc)

		err := svc.CancelByCustomer(ctx, "55555555-5555-5555-5555-555555555555", booked.ID)
		require.ErrorIs(t, err, ErrNotOwner)

		require.Equal(t, StatusActive, repo.appointments[booked.ID].Status)
		require.Empty(t, recorder.entries)
	})

	t.Run("cancel is rejected when already canceled", func(t *testing.T) {
		svc, _, recorder := newTestService(t)
		booked := book(t, svc)

		require.NoError(t, svc.CancelByCustomer(ctx, testCustomerID, booked.ID))
		err := svc.CancelByCustomer(ctx, testCustomerID, booked.ID)
		require.ErrorIs(t, err, ErrNotActive)

		require.Len(t, recorder.entries, 1)
	})

	t.Run("staff cancels any appointment with the staff action", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		booked := book(t, svc)

		require.NoError(t, svc.CancelByStaff(ctx, testStaffID, booked.ID))
		require.Equal(t, StatusCanceledByStaff, repo.appointments[booked.ID].Status)

		require.Len(t, recorder.entries, 1)
		require.Equal(t, testStaffID, recorder.entries[0].actorID)
	})

	t.Run("cancel of unknown appointment fails", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		err := svc.CancelByCustomer(ctx, testCustomerID, "99999999-9999-9999-9999-999999999999")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDayAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("booked appointment shows up in the day's slots", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC),
			ServiceIDs: []string{colorID},
		})
		require.NoError(t, err)

		slots, err := svc.DayAvailability(ctx, testStaffID, "2026-02-08")
		require.NoError(t, err)
		require.Len(t, slots, 24)

		// 90 minutes from 10:00 blocks 10:00, 10:30 and 11:00.
		require.True(t, slotAt(t, slots, 10, 0).Booked)
		require.True(t, slotAt(t, slots, 10, 30).Booked)
		require.True(t, slotAt(t, slots, 11, 0).Booked)
		require.False(t, slotAt(t, slots, 11, 30).Booked)
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.DayAvailability(ctx, testStaffID, "not-a-date")
		require.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown staff member is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.DayAvailability(ctx, "99999999-9999-9999-9999-999999999999", "2026-02-08")
		require.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("staff lookup infrastructure failure is not reported as not found", func(t *testing.T) {
		svc, deps := newTestServiceDeps(t)
		deps.users.err = errors.New("connection refused")

		_, err := svc.DayAvailability(ctx, testStaffID, "2026-02-08")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestAvailabilityCaching(t *testing.T) {
	ctx := context.Background()
	const date = "2026-02-08"
	at10 := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)

	t.Run("computed availability is served from the cache", func(t *testing.T) {
		svc, deps := newTestServiceDeps(t)

		_, err := svc.DayAvailability(ctx, testStaffID, date)
		require.NoError(t, err)
		require.Len(t, deps.cache.data, 1)

		// An appointment slipped into storage without going through Book is
		// invisible until the cached day expires or is invalidated.
		deps.repo.appointments["rogue"] = &Appointment{
			ID:            "rogue",
			CustomerID:    testCustomerID,
			StaffID:       testStaffID,
			StartTime:     at10,
			TotalDuration: 60,
			Status:        StatusActive,
		}

		slots, err := svc.DayAvailability(ctx, testStaffID, date)
		require.NoError(t, err)
		require.False(t, slotAt(t, slots, 10, 0).Booked)
	})

	t.Run("booking invalidates the cached day", func(t *testing.T) {
		svc, deps := newTestServiceDeps(t)

		_, err := svc.DayAvailability(ctx, testStaffID, date)
		require.NoError(t, err)
		require.Len(t, deps.cache.data, 1)

		_, err = svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  at10,
			ServiceIDs: []string{cutID},
		})
		require.NoError(t, err)
		require.Empty(t, deps.cache.data)

		slots, err := svc.DayAvailability(ctx, testStaffID, date)
		require.NoError(t, err)
		require.True(t, slotAt(t, slots, 10, 0).Booked)
	})

	t.Run("cancellation invalidates the cached day", func(t *testing.T) {
		svc, deps := newTestServiceDeps(t)

		booked, err := svc.Book(ctx, BookParams{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			StartTime:  at10,
			ServiceIDs: []string{cutID},
		})
		require.NoError(t, err)

		slots, err := svc.DayAvailability(ctx, testStaffID, date)
		require.NoError(t, err)
		require.True(t, slotAt(t, slots, 10, 0).Booked)

		require.NoError(t, svc.CancelByCustomer(ctx, testCustomerID, booked.ID))
		require.Empty(t, deps.cache.data)

		slots, err = svc.DayAvailability(ctx, testStaffID, date)
		require.NoError(t, err)
		require.False(t, slotAt(t, slots, 10, 0).Booked)
	})
}
