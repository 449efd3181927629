package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
)

func TestEstimateRepo_ConditionalWrite(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Estimates()

	seed := entities.CostEstimate{ID: "est-1", CustomerID: "cust-1", Status: entities.EstimateStatusDraft}
	if _, err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("matching status writes", func(t *testing.T) {
		updated := seed
		updated.Status = entities.EstimateStatusPendingMechanic
		if _, err := repo.UpdateIfStatus(ctx, updated, entities.EstimateStatusDraft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, "est-1")
		if got.Status != entities.EstimateStatusPendingMechanic {
			t.Fatalf("write not applied: %s", got.Status)
		}
	})

	t.Run("stale expectation conflicts", func(t *testing.T) {
		stale := seed
		stale.Status = entities.EstimateStatusMechanicApproved
		_, err := repo.UpdateIfStatus(ctx, stale, entities.EstimateStatusDraft)
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("unknown id is not found, not conflict", func(t *testing.T) {
		missing := entities.CostEstimate{ID: "est-404", Status: entities.EstimateStatusDraft}
		got, err := repo.UpdateIfStatus(ctx, missing, entities.EstimateStatusDraft)
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})
}

func TestAuthorizationRepo_LostRace(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Authorizations()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seed := entities.WorkAuthorization{ID: "wa-1", CustomerID: "cust-1", MechanicID: "mech-1", WorkflowStatus: entities.WorkflowStatusAuthorized, CreatedAt: now}
	if _, err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Two callers read authorized; the first one's conditional write wins
	// and the second sees the conflict instead of clobbering the winner.
	first, _ := repo.GetByID(ctx, "wa-1")
	second, _ := repo.GetByID(ctx, "wa-1")

	first.WorkflowStatus = entities.WorkflowStatusInProgress
	if _, err := repo.UpdateIfStatus(ctx, first, entities.WorkflowStatusAuthorized); err != nil {
		t.Fatalf("winner write: %v", err)
	}

	second.WorkflowStatus = entities.WorkflowStatusCancelled
	_, err := repo.UpdateIfStatus(ctx, second, entities.WorkflowStatusAuthorized)
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict for the loser, got %v", err)
	}

	got, _ := repo.GetByID(ctx, "wa-1")
	if got.WorkflowStatus != entities.WorkflowStatusInProgress {
		t.Fatalf("loser overwrote the winner: %s", got.WorkflowStatus)
	}
}

func TestStore_ReadsNeverAlias(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Authorizations()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seed := entities.WorkAuthorization{
		ID:             "wa-1",
		WorkflowStatus: entities.WorkflowStatusAssigned,
		TimeTracking:   []entities.StageWindow{{Stage: entities.WorkflowStatusAssigned, StartTime: now}},
		CreatedAt:      now,
	}
	if _, err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := repo.GetByID(ctx, "wa-1")
	got.TimeTracking[0].Stage = entities.WorkflowStatusCancelled

	again, _ := repo.GetByID(ctx, "wa-1")
	if again.TimeTracking[0].Stage != entities.WorkflowStatusAssigned {
		t.Fatalf("stored value aliased a returned slice")
	}
}

func TestRequestRepo_ShopQueueIsFIFO(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Requests()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	urgencies := []entities.Urgency{entities.UrgencyLow, entities.UrgencyHigh, entities.UrgencyNormal}
	ids := []string{"req-1", "req-2", "req-3"}
	for i, id := range ids {
		r := entities.MechanicRequest{
			ID:        id,
			ShopID:    "shop-1",
			Urgency:   urgencies[i],
			Status:    entities.RequestStatusQueued,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Create(ctx, r); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	queue, err := repo.ListByShopID(ctx, "shop-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(queue) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(queue))
	}
	// Creation order, regardless of urgency.
	for i, id := range ids {
		if queue[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, queue[i].ID)
		}
	}
}
