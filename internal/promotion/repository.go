package promotion

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Promotion) error
	List(ctx context.Context) ([]*Promotion, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Promotion) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.promotions").
		Columns("code", "discount_percentage", "description", "expiration_date", "is_active").
		Values(p.Code, p.DiscountPercentage, p.Description, p.ExpirationDate, p.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create promotion query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrCodeAlreadyUsed
		}
		return fmt.Errorf("create promotion failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Promotion, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "code", "discount_percentage", "description", "expiration_date", "is_active", "created_at").
		From("public.promotions").
		OrderBy("is_active DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list promotions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promotions failed: %w", err)
	}
	defer rows.Close()

	var promos []*Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(
			&p.ID, &p.Code, &p.DiscountPercentage, &p.Description, &p.ExpirationDate, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion failed: %w", err)
		}
		promos = append(promos, &p)
	}

	return promos, nil
}

func (r *pgxRepository) SetActive(ctx context.Context, id string, active bool) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.promotions").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update promotion query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update promotion failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete promotion query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete promotion failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
