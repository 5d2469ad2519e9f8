package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	services map[string]*Service
}

func (r *fakeCatalogRepo) Create(_ context.Context, svc *Service) error {
	svc.ID = "svc-" + svc.Name
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeCatalogRepo) GetByIDs(_ context.Context, ids []string) ([]*Service, error) {
	var out []*Service
	for _, id := range ids {
		if svc, ok := r.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) List(_ context.Context) ([]*Service, error) {
	var out []*Service
	for _, svc := range r.services {
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func TestCatalogCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeCatalogRepo{services: map[string]*Service{}})

	t.Run("valid service is stored with trimmed name", func(t *testing.T) {
		created, err := svc.Create(ctx, CreateRequest{Name: "  Haircut ", DurationMinutes: 30, Price: 50})
		require.NoError(t, err)
		require.Equal(t, "Haircut", created.Name)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: " ", DurationMinutes: 30, Price: 50})
		require.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("non-positive duration is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Haircut", DurationMinutes: 0, Price: 50})
		require.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Haircut", DurationMinutes: 30, Price: -1})
		require.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("free services are allowed", func(t *testing.T) {
		created, err := svc.Create(ctx, CreateRequest{Name: "Consultation", DurationMinutes: 15, Price: 0})
		require.NoError(t, err)
		require.Equal(t, 0.0, created.Price)
	})
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeCatalogRepo{services: map[string]*Service{}}
	svc := NewService(repo)

	created, err := svc.Create(ctx, CreateRequest{Name: "Haircut", DurationMinutes: 30, Price: 50})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}
