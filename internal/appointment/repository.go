package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create persists the appointment and its service snapshot atomically.
	// It fails with ErrTimeConflict when the staff member already has an
	// active appointment overlapping [StartTime, EndTime). The availability
	// check and the insert run in the same transaction, closing the
	// read-then-insert double-booking race.
	Create(ctx context.Context, a *Appointment) error

	GetByID(ctx context.Context, id string) (*Appointment, error)
	ListByCustomer(ctx context.Context, customerID string, statuses []Status, ascending bool) ([]*Appointment, error)
	ListForStaffDay(ctx context.Context, staffID string, date time.Time) ([]*Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// servicesJSON is the correlated subquery that folds the appointment's
// service snapshot into a JSON array, scanned into []ServiceLine.
const servicesJSON = `
	COALESCE(
		(
			SELECT json_agg(json_build_object(
				'id', aps.service_id,
				'name', aps.service_name,
				'duration_minutes', aps.duration_minutes,
				'price', aps.price
			) ORDER BY aps.service_name)
			FROM public.appointment_services aps
			WHERE aps.appointment_id = a.id
		),
		'[]'::json
	)
`

func (r *pgxRepository) Create(ctx context.Context, a *Appointment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create appointment tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional insert: the row only materializes when no active
	// appointment of the same staff member overlaps the requested interval.
	const insertQuery = `
		INSERT INTO public.appointments (customer_id, staff_id, start_time, total_duration, final_price, status)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM public.appointments
			WHERE staff_id = $2
			  AND status = 'active'
			  AND start_time < $7
			  AND start_time + make_interval(mins => total_duration) > $3
		)
		RETURNING id, created_at, updated_at
	`

	if err := tx.QueryRow(
		ctx,
		insertQuery,
		a.CustomerID,
		a.StaffID,
		a.StartTime,
		a.TotalDuration,
		a.FinalPrice,
		a.Status,
		a.EndTime(),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTimeConflict
		}
		return fmt.Errorf("insert appointment failed: %w", err)
	}

	// Snapshot the selected services.
	for _, line := range a.Services {
		const lineQuery = `
			INSERT INTO public.appointment_services (appointment_id, service_id, service_name, duration_minutes, price)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, lineQuery, a.ID, line.ServiceID, line.Name, line.DurationMinutes, line.Price); err != nil {
			return fmt.Errorf("insert appointment service failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create appointment tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	query := `
		SELECT
			a.id, a.customer_id, cu.username, a.staff_id, su.username,
			a.start_time, a.total_duration, a.final_price, a.status,
			a.created_at, a.updated_at,` + servicesJSON + `
		FROM public.appointments a
		JOIN public.users cu ON a.customer_id = cu.id
		JOIN public.users su ON a.staff_id = su.id
		WHERE a.id = $1
	`

	a, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment failed: %w", err)
	}
	return a, nil
}

func (r *pgxRepository) ListByCustomer(ctx context.Context, customerID string, statuses []Status, ascending bool) ([]*Appointment, error) {
	order := "a.start_time DESC"
	if ascending {
		order = "a.start_time ASC"
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"a.id", "a.customer_id", "cu.username", "a.staff_id", "su.username",
		"a.start_time", "a.total_duration", "a.final_price", "a.status",
		"a.created_at", "a.updated_at", servicesJSON,
	).
		From("public.appointments a").
		Join("public.users cu ON a.customer_id = cu.id").
		Join("public.users su ON a.staff_id = su.id").
		Where(squirrel.Eq{"a.customer_id": customerID}).
		Where(squirrel.Eq{"a.status": statuses}).
		OrderBy(order)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list appointments query failed: %w", err)
	}

	return r.queryAppointments(ctx, sql, args...)
}

func (r *pgxRepository) ListForStaffDay(ctx context.Context, staffID string, date time.Time) ([]*Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"a.id", "a.customer_id", "cu.username", "a.staff_id", "su.username",
		"a.start_time", "a.total_duration", "a.final_price", "a.status",
		"a.created_at", "a.updated_at", servicesJSON,
	).
		From("public.appointments a").
		Join("public.users cu ON a.customer_id = cu.id").
		Join("public.users su ON a.staff_id = su.id").
		Where(squirrel.Eq{"a.staff_id": staffID}).
		Where(squirrel.Eq{"a.status": StatusActive}).
		Where(squirrel.GtOrEq{"a.start_time": dayStart}).
		Where(squirrel.Lt{"a.start_time": dayEnd}).
		OrderBy("a.start_time ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build staff day query failed: %w", err)
	}

	return r.queryAppointments(ctx, sql, args...)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update appointment status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryAppointments(ctx context.Context, sql string, args ...any) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments failed: %w", err)
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment failed: %w", err)
		}
		appointments = append(appointments, a)
	}

	return appointments, nil
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var servicesRaw []byte

	if err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.CustomerUsername,
		&a.StaffID,
		&a.StaffUsername,
		&a.StartTime,
		&a.TotalDuration,
		&a.FinalPrice,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&servicesRaw,
	); err != nil {
		return nil, err
	}

	if len(servicesRaw) > 0 {
		if err := json.Unmarshal(servicesRaw, &a.Services); err != nil {
			log.Printf("warning: failed to unmarshal services for appointment %s: %v", a.ID, err)
		}
	}

	return &a, nil
}
