package activitylog

import (
	"context"
)

// Recorder is the write side used by other modules.
type Recorder interface {
	Record(ctx context.Context, actorID, action, details string) error
}

type Service interface {
	Recorder
	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, actorID, action, details string) error {
	return s.repo.Create(ctx, &Entry{
		ActorID: actorID,
		Action:  action,
		Details: details,
	})
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	return s.repo.List(ctx, filter)
}
