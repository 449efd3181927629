package response

import (
	"time"

	"mecanica_workflow/internal/domain/entities"
)

type StageWindowResponse struct {
	Stage           string     `json:"stage"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *float64   `json:"duration_minutes,omitempty"`
}

type WorkAuthorizationResponse struct {
	ID                string                `json:"id"`
	MechanicRequestID string                `json:"mechanic_request_id,omitempty"`
	EstimateID        string                `json:"estimate_id"`
	CustomerID        string                `json:"customer_id"`
	MechanicID        string                `json:"mechanic_id,omitempty"`
	ShopID            string                `json:"shop_id,omitempty"`
	ServiceType       string                `json:"service_type,omitempty"`
	Urgency           string                `json:"urgency,omitempty"`
	WorkflowStatus    string                `json:"workflow_status"`
	PreviousStatus    string                `json:"previous_status,omitempty"`
	TimeTracking      []StageWindowResponse `json:"time_tracking"`

	EstimatedDurationMinutes float64    `json:"estimated_duration_minutes,omitempty"`
	EstimatedCompletion      *time.Time `json:"estimated_completion,omitempty"`
	ActualDurationMinutes    *float64   `json:"actual_duration_minutes,omitempty"`
	ActualCompletion         *time.Time `json:"actual_completion,omitempty"`

	CustomerNotified bool      `json:"customer_notified"`
	MechanicNotes    string    `json:"mechanic_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromWorkAuthorization(w entities.WorkAuthorization) WorkAuthorizationResponse {
	tracking := make([]StageWindowResponse, 0, len(w.TimeTracking))
	for _, win := range w.TimeTracking {
		tracking = append(tracking, StageWindowResponse{
			Stage:           string(win.Stage),
			StartTime:       win.StartTime,
			EndTime:         win.EndTime,
			DurationMinutes: win.DurationMinutes,
		})
	}
	return WorkAuthorizationResponse{
		ID:                       w.ID,
		MechanicRequestID:        w.MechanicRequestID,
		EstimateID:               w.EstimateID,
		CustomerID:               w.CustomerID,
		MechanicID:               w.MechanicID,
		ShopID:                   w.ShopID,
		ServiceType:              w.ServiceType,
		Urgency:                  string(w.Urgency),
		WorkflowStatus:           string(w.WorkflowStatus),
		PreviousStatus:           string(w.PreviousStatus),
		TimeTracking:             tracking,
		EstimatedDurationMinutes: w.EstimatedDurationMinutes,
		EstimatedCompletion:      w.EstimatedCompletion,
		ActualDurationMinutes:    w.ActualDurationMinutes,
		ActualCompletion:         w.ActualCompletion,
		CustomerNotified:         w.CustomerNotified,
		MechanicNotes:            w.MechanicNotes,
		CreatedAt:                w.CreatedAt,
		UpdatedAt:                w.UpdatedAt,
	}
}

func FromWorkAuthorizations(items []entities.WorkAuthorization) []WorkAuthorizationResponse {
	out := make([]WorkAuthorizationResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromWorkAuthorization(w))
	}
	return out
}
