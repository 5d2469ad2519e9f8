package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/storage"
)

// allowedExtensions mirrors the upload policy for salon photos.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, staffID string) (*Image, error)
	Delete(ctx context.Context, id, staffID string) error
	ListByStaff(ctx context.Context, staffID string) ([]*Image, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Image, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Image, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, staffID string) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content; it is read twice (original save + thumbnail).
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	imageID := uuid.New().String()

	// Sharded path: gallery/ab/UUID.ext
	shard := imageID[:2]
	storagePath := fmt.Sprintf("gallery/%s/%s%s", shard, imageID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save image to storage: %w", err)
	}

	// Thumbnail generation is best effort; the upload survives without one.
	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 200, 200)
	if err == nil {
		tPath := fmt.Sprintf("gallery/%s/%s_thumb.jpg", shard, imageID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	} else {
		log.Printf("warning: failed to generate thumbnail for %s: %v", header.Filename, err)
	}

	img := &Image{
		ID:            imageID,
		StaffID:       staffID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   header.Header.Get("Content-Type"),
		Size:          header.Size,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// Clean up storage if the DB insert fails.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return img, nil
}

// Delete removes a gallery image owned by staffID. Storage-level deletion
// failures are logged and swallowed; the database row is always removed.
func (s *service) Delete(ctx context.Context, id, staffID string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if img.StaffID != staffID {
		return ErrNotOwner
	}

	if err := s.storage.Delete(ctx, img.StoragePath); err != nil {
		log.Printf("warning: failed to delete image file %s: %v", img.StoragePath, err)
	}
	if img.ThumbnailPath != nil {
		if err := s.storage.Delete(ctx, *img.ThumbnailPath); err != nil {
			log.Printf("warning: failed to delete thumbnail %s: %v", *img.ThumbnailPath, err)
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) ListByStaff(ctx context.Context, staffID string) ([]*Image, error) {
	return s.repo.ListByStaff(ctx, staffID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, img.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve image from storage: %w", err)
	}

	return stream, img, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if img.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *img.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, img, nil
}
