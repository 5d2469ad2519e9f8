package gallery

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	ListByStaff(ctx context.Context, staffID string) ([]*Image, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, img *Image) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.gallery_images").
		Columns("id", "staff_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		Values(img.ID, img.StaffID, img.Filename, img.StoragePath, img.ThumbnailPath, img.ContentType, img.Size, img.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create image query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create image record failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Image, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "staff_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		From("public.gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get image query failed: %w", err)
	}

	var img Image
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&img.ID,
		&img.StaffID,
		&img.Filename,
		&img.StoragePath,
		&img.ThumbnailPath,
		&img.ContentType,
		&img.Size,
		&img.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get image failed: %w", err)
	}

	return &img, nil
}

func (r *pgxRepository) ListByStaff(ctx context.Context, staffID string) ([]*Image, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "staff_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		From("public.gallery_images").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list images query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list images failed: %w", err)
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(
			&img.ID,
			&img.StaffID,
			&img.Filename,
			&img.StoragePath,
			&img.ThumbnailPath,
			&img.ContentType,
			&img.Size,
			&img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan image failed: %w", err)
		}
		images = append(images, &img)
	}

	return images, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete image query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete image record failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
