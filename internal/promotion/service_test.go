package promotion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePromotionRepo struct {
	byCode map[string]*Promotion
	byID   map[string]*Promotion
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{byCode: map[string]*Promotion{}, byID: map[string]*Promotion{}}
}

func (r *fakePromotionRepo) Create(_ context.Context, p *Promotion) error {
	if _, ok := r.byCode[p.Code]; ok {
		return ErrCodeAlreadyUsed
	}
	p.ID = "promo-" + p.Code
	r.byCode[p.Code] = p
	r.byID[p.ID] = p
	return nil
}

func (r *fakePromotionRepo) List(_ context.Context) ([]*Promotion, error) {
	var out []*Promotion
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePromotionRepo) SetActive(_ context.Context, id string, active bool) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	p.IsActive = active
	return nil
}

func (r *fakePromotionRepo) Delete(_ context.Context, id string) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byCode, p.Code)
	delete(r.byID, id)
	return nil
}

func TestPromotionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("code is normalized to upper case and starts active", func(t *testing.T) {
		svc := NewService(newFakePromotionRepo())

		p, err := svc.Create(ctx, CreateRequest{Code: "  summer20 ", DiscountPercentage: 20})
		require.NoError(t, err)
		require.Equal(t, "SUMMER20", p.Code)
		require.True(t, p.IsActive)
		require.Nil(t, p.Description)
	})

	t.Run("blank code is rejected", func(t *testing.T) {
		svc := NewService(newFakePromotionRepo())
		_, err := svc.Create(ctx, CreateRequest{Code: "  ", DiscountPercentage: 20})
		require.ErrorIs(t, err, ErrCodeRequired)
	})

	t.Run("discount outside 1..100 is rejected", func(t *testing.T) {
		svc := NewService(newFakePromotionRepo())

		_, err := svc.Create(ctx, CreateRequest{Code: "X", DiscountPercentage: 0})
		require.ErrorIs(t, err, ErrInvalidDiscount)

		_, err = svc.Create(ctx, CreateRequest{Code: "X", DiscountPercentage: 101})
		require.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("duplicate code conflicts regardless of case", func(t *testing.T) {
		svc := NewService(newFakePromotionRepo())

		_, err := svc.Create(ctx, CreateRequest{Code: "WELCOME", DiscountPercentage: 10})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{Code: "welcome", DiscountPercentage: 10})
		require.ErrorIs(t, err, ErrCodeAlreadyUsed)
	})
}

func TestPromotionDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := newFakePromotionRepo()
	svc := NewService(repo)

	p, err := svc.Create(ctx, CreateRequest{Code: "WELCOME", DiscountPercentage: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, p.ID))
	require.False(t, repo.byID[p.ID].IsActive)

	require.ErrorIs(t, svc.Deactivate(ctx, "missing"), ErrNotFound)
}
