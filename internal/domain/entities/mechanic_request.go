package entities

import (
	"encoding/json"
	"time"
)

// RequestStatus tracks conversation routing for a mechanic request. It is a
// deliberately small set, independent of the work-authorization FSM: this
// object routes the customer's ask to a human, it does not track physical
// work.

type RequestStatus string

const (
	RequestStatusQueued    RequestStatus = "queued"
	RequestStatusAssigned  RequestStatus = "assigned"
	RequestStatusResponded RequestStatus = "responded"
	RequestStatusClosed    RequestStatus = "closed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusQueued, RequestStatusAssigned, RequestStatusResponded, RequestStatusClosed:
		return true
	}
	return false
}

// requestTransitions is the only place legal routing edges are defined.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusQueued:    {RequestStatusAssigned, RequestStatusClosed},
	RequestStatusAssigned:  {RequestStatusResponded, RequestStatusClosed},
	RequestStatusResponded: {RequestStatusClosed},
}

// CanTransitionTo reports whether the routing status may move to target.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, t := range requestTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Urgency is display metadata on queue listings. It never reorders the
// underlying FIFO ordering used for fairness.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh:
		return true
	}
	return false
}

// MechanicRequest is a customer's ask for human attention, queued per shop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shop_id-index): shop_id, sort key created_at (FIFO queue order)
//   - GSI2 (customer_id-index): customer_id, sort key created_at
//
// AssignedMechanicID is set exactly once, on the queued→assigned transition.
type MechanicRequest struct {
	ID                 string          `json:"id"`
	CustomerID         string          `json:"customer_id"`
	ShopID             string          `json:"shop_id"`
	AssignedMechanicID string          `json:"assigned_mechanic_id,omitempty"`
	RequestMessage     string          `json:"request_message"`
	Urgency            Urgency         `json:"urgency"`
	Status             RequestStatus   `json:"status"`
	ConversationSnap   json.RawMessage `json:"conversation_snapshot,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
