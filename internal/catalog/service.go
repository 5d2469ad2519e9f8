package catalog

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name            string
	DurationMinutes int
	Price           float64
}

type CatalogService interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	svc := &Service{
		Name:            name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *catalogService) GetByIDs(ctx context.Context, ids []string) ([]*Service, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *catalogService) List(ctx context.Context) ([]*Service, error) {
	return s.repo.List(ctx)
}

// Delete removes a catalog entry. Existing appointments keep their own copy
// of duration and price, so deletion is always allowed.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
