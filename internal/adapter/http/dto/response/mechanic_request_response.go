package response

import (
	"encoding/json"
	"time"

	"mecanica_workflow/internal/domain/entities"
)

type MechanicRequestResponse struct {
	ID                 string          `json:"id"`
	CustomerID         string          `json:"customer_id"`
	ShopID             string          `json:"shop_id"`
	AssignedMechanicID string          `json:"assigned_mechanic_id,omitempty"`
	RequestMessage     string          `json:"request_message"`
	Urgency            string          `json:"urgency"`
	Status             string          `json:"status"`
	ConversationSnap   json.RawMessage `json:"conversation_snapshot,omitempty"`
	QueuePosition      int             `json:"queue_position,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func FromMechanicRequest(r entities.MechanicRequest) MechanicRequestResponse {
	return MechanicRequestResponse{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		ShopID:             r.ShopID,
		AssignedMechanicID: r.AssignedMechanicID,
		RequestMessage:     r.RequestMessage,
		Urgency:            string(r.Urgency),
		Status:             string(r.Status),
		ConversationSnap:   r.ConversationSnap,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromMechanicRequestQueue annotates FIFO positions (1-based) for queued
// items. Display-only; urgency never reorders the underlying queue.
func FromMechanicRequestQueue(items []entities.MechanicRequest) []MechanicRequestResponse {
	out := make([]MechanicRequestResponse, 0, len(items))
	position := 0
	for _, r := range items {
		resp := FromMechanicRequest(r)
		if r.Status == entities.RequestStatusQueued {
			position++
			resp.QueuePosition = position
		}
		out = append(out, resp)
	}
	return out
}
