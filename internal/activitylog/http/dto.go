package http

import (
	"time"

	"github.com/kuafor-app/salon-booking-backend/internal/activitylog"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
)

type EntryResponse struct {
	ID            string    `json:"id"`
	ActorID       string    `json:"actor_id"`
	ActorUsername string    `json:"actor_username"`
	Action        string    `json:"action"`
	Details       string    `json:"details"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewEntryResponse(e *activitylog.Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		ActorID:       e.ActorID,
		ActorUsername: e.ActorUsername,
		Action:        e.Action,
		Details:       e.Details,
		CreatedAt:     e.CreatedAt,
	}
}

type ListRequest struct {
	request.ListParams
}
