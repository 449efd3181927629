package entities

import (
	"errors"
	"time"
)

// WorkflowStatus is a stage in the work-authorization state machine.
//
//	assigned → authorized → in_progress → completed
//
// with side exits to on_hold (resumable) and cancelled (terminal). The
// transition table below is the single place legal edges are defined.

type WorkflowStatus string

const (
	WorkflowStatusAssigned   WorkflowStatus = "assigned"
	WorkflowStatusAuthorized WorkflowStatus = "authorized"
	WorkflowStatusInProgress WorkflowStatus = "in_progress"
	WorkflowStatusCompleted  WorkflowStatus = "completed"
	WorkflowStatusOnHold     WorkflowStatus = "on_hold"
	WorkflowStatusCancelled  WorkflowStatus = "cancelled"
)

func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowStatusAssigned, WorkflowStatusAuthorized, WorkflowStatusInProgress,
		WorkflowStatusCompleted, WorkflowStatusOnHold, WorkflowStatusCancelled:
		return true
	}
	return false
}

func (s WorkflowStatus) IsTerminal() bool {
	return s == WorkflowStatusCompleted || s == WorkflowStatusCancelled
}

var workflowTransitions = map[WorkflowStatus][]WorkflowStatus{
	WorkflowStatusAssigned:   {WorkflowStatusAuthorized, WorkflowStatusOnHold, WorkflowStatusCancelled},
	WorkflowStatusAuthorized: {WorkflowStatusInProgress, WorkflowStatusOnHold, WorkflowStatusCancelled},
	WorkflowStatusInProgress: {WorkflowStatusCompleted, WorkflowStatusOnHold, WorkflowStatusCancelled},
	WorkflowStatusOnHold:     {WorkflowStatusCancelled},
}

// ErrInvalidWorkflowTransition is returned by Transition when the requested
// edge is not in the table. The authorization is returned unchanged so a
// caller can detect the no-op.
var ErrInvalidWorkflowTransition = errors.New("invalid workflow transition")

// StageWindow is one timed occupancy of a stage. A stage can own several
// windows: resuming from on_hold opens a fresh window rather than reopening
// the one the hold interrupted, so hold time stays auditable separately from
// active work time.
type StageWindow struct {
	Stage           WorkflowStatus `json:"stage"`
	StartTime       time.Time      `json:"start_time"`
	EndTime         *time.Time     `json:"end_time,omitempty"`
	DurationMinutes *float64       `json:"duration_minutes,omitempty"`
}

// WorkAuthorization is the trackable unit of physical work created when a
// customer approves a reviewed estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (mechanic_id-index): mechanic_id, sort key created_at
//   - GSI2 (shop_id-index): shop_id, sort key created_at
//   - GSI3 (customer_id-index): customer_id, sort key created_at
//
// The state machine is the sole writer of WorkflowStatus and TimeTracking.
type WorkAuthorization struct {
	ID                string         `json:"id"`
	MechanicRequestID string         `json:"mechanic_request_id,omitempty"`
	EstimateID        string         `json:"estimate_id"`
	CustomerID        string         `json:"customer_id"`
	MechanicID        string         `json:"mechanic_id"`
	ShopID            string         `json:"shop_id"`
	ServiceType       string         `json:"service_type,omitempty"`
	Urgency           Urgency        `json:"urgency"`
	WorkflowStatus    WorkflowStatus `json:"workflow_status"`
	PreviousStatus    WorkflowStatus `json:"previous_status,omitempty"`
	TimeTracking      []StageWindow  `json:"time_tracking"`

	EstimatedDurationMinutes float64    `json:"estimated_duration_minutes,omitempty"`
	EstimatedCompletion      *time.Time `json:"estimated_completion,omitempty"`
	ActualDurationMinutes    *float64   `json:"actual_duration_minutes,omitempty"`
	ActualCompletion         *time.Time `json:"actual_completion,omitempty"`

	CustomerNotified bool      `json:"customer_notified"`
	MechanicNotes    string    `json:"mechanic_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewWorkAuthorization opens an authorization in `assigned` with its first
// stage window started at now. Estimated duration comes from the approved
// estimate's labor hours. Urgency starts at normal; the creator overlays the
// linked mechanic request's urgency, since the estimate does not carry one.
func NewWorkAuthorization(id string, estimate CostEstimate, now time.Time) WorkAuthorization {
	laborHours := estimate.EffectiveBreakdown().Labor.Hours
	w := WorkAuthorization{
		ID:                id,
		MechanicRequestID: estimate.MechanicRequestID,
		EstimateID:        estimate.ID,
		CustomerID:        estimate.CustomerID,
		MechanicID:        estimate.ModifiedByMechanic,
		ShopID:            estimate.ShopID,
		ServiceType:       estimate.ServiceType,
		Urgency:           UrgencyNormal,
		WorkflowStatus:    WorkflowStatusAssigned,
		TimeTracking:      []StageWindow{{Stage: WorkflowStatusAssigned, StartTime: now}},
		CustomerNotified:  false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if laborHours > 0 {
		w.EstimatedDurationMinutes = laborHours * 60
		eta := now.Add(time.Duration(w.EstimatedDurationMinutes * float64(time.Minute)))
		w.EstimatedCompletion = &eta
	}
	return w
}

// CanTransitionTo reports whether the FSM allows moving to target. on_hold
// may additionally resume into the state it interrupted.
func (w WorkAuthorization) CanTransitionTo(target WorkflowStatus) bool {
	if w.WorkflowStatus == WorkflowStatusOnHold && target == w.PreviousStatus && !target.IsTerminal() {
		return true
	}
	for _, t := range workflowTransitions[w.WorkflowStatus] {
		if t == target {
			return true
		}
	}
	return false
}

// Transition returns a copy moved to target with time tracking updated, or
// the receiver unchanged plus ErrInvalidWorkflowTransition. A single `now`
// closes the old window and opens the new one, so the pair can never produce
// a negative duration.
func (w WorkAuthorization) Transition(target WorkflowStatus, now time.Time) (WorkAuthorization, error) {
	if !target.Valid() || !w.CanTransitionTo(target) {
		return w, ErrInvalidWorkflowTransition
	}

	next := w
	next.TimeTracking = make([]StageWindow, len(w.TimeTracking))
	copy(next.TimeTracking, w.TimeTracking)

	next.closeOpenWindow(now)
	next.TimeTracking = append(next.TimeTracking, StageWindow{Stage: target, StartTime: now})
	next.PreviousStatus = w.WorkflowStatus
	next.WorkflowStatus = target
	next.UpdatedAt = now

	if target == WorkflowStatusCompleted {
		total := next.StageTotalMinutes(WorkflowStatusInProgress)
		next.ActualDurationMinutes = &total
		completion := now
		next.ActualCompletion = &completion
	}
	return next, nil
}

// closeOpenWindow stamps the trailing open window with now and its derived
// duration. End never precedes start even under clock skew.
func (w *WorkAuthorization) closeOpenWindow(now time.Time) {
	if len(w.TimeTracking) == 0 {
		return
	}
	last := &w.TimeTracking[len(w.TimeTracking)-1]
	if last.EndTime != nil {
		return
	}
	end := now
	if end.Before(last.StartTime) {
		end = last.StartTime
	}
	last.EndTime = &end
	d := end.Sub(last.StartTime).Minutes()
	last.DurationMinutes = &d
}

// StageTotalMinutes sums the closed windows of one stage. Hold windows are
// therefore never mixed into active-work totals.
func (w WorkAuthorization) StageTotalMinutes(stage WorkflowStatus) float64 {
	total := 0.0
	for _, win := range w.TimeTracking {
		if win.Stage == stage && win.DurationMinutes != nil {
			total += *win.DurationMinutes
		}
	}
	return total
}

// CompletedOnTime reports whether the finished work fit its estimate. The
// second return is false when the item cannot contribute to an on-time ratio
// (not completed, or no estimate to compare against).
func (w WorkAuthorization) CompletedOnTime() (onTime, ok bool) {
	if w.WorkflowStatus != WorkflowStatusCompleted || w.ActualDurationMinutes == nil {
		return false, false
	}
	if w.EstimatedDurationMinutes <= 0 {
		return false, false
	}
	return *w.ActualDurationMinutes <= w.EstimatedDurationMinutes, true
}
