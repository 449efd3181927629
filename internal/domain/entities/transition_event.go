package entities

import "time"

// TransitionEvent is emitted to the notification dispatcher on every state
// change. Delivery is fire-and-forget; a failed notification never rolls
// back the transition that produced it.
type TransitionEvent struct {
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EntityTypeCostEstimate      = "cost_estimate"
	EntityTypeMechanicRequest   = "mechanic_request"
	EntityTypeWorkAuthorization = "work_authorization"
)
