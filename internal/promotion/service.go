package promotion

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Code               string
	DiscountPercentage int
	Description        string
	ExpirationDate     *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Promotion, error)
	List(ctx context.Context) ([]*Promotion, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Promotion, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, ErrCodeRequired
	}
	if req.DiscountPercentage < 1 || req.DiscountPercentage > 100 {
		return nil, ErrInvalidDiscount
	}

	var descPtr *string
	if strings.TrimSpace(req.Description) != "" {
		d := strings.TrimSpace(req.Description)
		descPtr = &d
	}

	p := &Promotion{
		Code:               code,
		DiscountPercentage: req.DiscountPercentage,
		Description:        descPtr,
		ExpirationDate:     req.ExpirationDate,
		IsActive:           true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) List(ctx context.Context) ([]*Promotion, error) {
	return s.repo.List(ctx)
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
