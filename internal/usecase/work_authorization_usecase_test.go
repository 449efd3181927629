package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	mock_interfaces "mecanica_workflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedTestEstimate() entities.CostEstimate {
	return entities.CostEstimate{
		ID:         "est-1",
		CustomerID: "cust-1",
		ShopID:     "shop-1",
		Status:     entities.EstimateStatusCustomerApproved,
		Breakdown: entities.EstimateBreakdown{
			Labor: entities.LaborCharge{Hours: 1.5, HourlyRate: 100, Total: 150},
			Total: 150,
		},
	}
}

func TestWorkAuthorizationUseCase_CreateFromApprovedEstimate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("estimate not approved", func(t *testing.T) {
		uc := NewWorkAuthorizationUseCase(nil, nil, nil, nil, nil)
		e := approvedTestEstimate()
		e.Status = entities.EstimateStatusPendingCustomer
		_, err := uc.CreateFromApprovedEstimate(context.Background(), e)
		if !errors.Is(err, ErrEstimateNotApproved) {
			t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
		}
	})

	t.Run("success opens assigned with first window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkAuthorization{})).DoAndReturn(
			func(_ context.Context, w entities.WorkAuthorization) (entities.WorkAuthorization, error) {
				if w.WorkflowStatus != entities.WorkflowStatusAssigned {
					t.Fatalf("expected assigned, got %s", w.WorkflowStatus)
				}
				if w.EstimateID != "est-1" || w.CustomerID != "cust-1" || w.ShopID != "shop-1" {
					t.Fatalf("estimate fields not carried over: %+v", w)
				}
				if w.EstimatedDurationMinutes != 90 {
					t.Fatalf("expected 90 estimated minutes, got %v", w.EstimatedDurationMinutes)
				}
				if len(w.TimeTracking) != 1 || w.TimeTracking[0].EndTime != nil {
					t.Fatalf("expected one open window, got %+v", w.TimeTracking)
				}
				return w, nil
			},
		)

		if _, err := uc.CreateFromApprovedEstimate(context.Background(), approvedTestEstimate()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("urgency follows the linked request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		requests := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, requests, nil, fixedClock(t, ctrl, now), nil)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MechanicRequest{
			ID:      "req-1",
			Urgency: entities.UrgencyHigh,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkAuthorization{})).DoAndReturn(
			func(_ context.Context, w entities.WorkAuthorization) (entities.WorkAuthorization, error) {
				if w.Urgency != entities.UrgencyHigh {
					t.Fatalf("expected high urgency, got %q", w.Urgency)
				}
				return w, nil
			},
		)

		e := approvedTestEstimate()
		e.MechanicRequestID = "req-1"
		if _, err := uc.CreateFromApprovedEstimate(context.Background(), e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkAuthorizationUseCase_Transition(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mechanic := entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}
	customer := entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}

	stored := func(status entities.WorkflowStatus) entities.WorkAuthorization {
		return entities.WorkAuthorization{
			ID:             "wa-1",
			EstimateID:     "est-1",
			CustomerID:     "cust-1",
			MechanicID:     "mech-1",
			ShopID:         "shop-1",
			WorkflowStatus: status,
			TimeTracking:   []entities.StageWindow{{Stage: status, StartTime: now.Add(-time.Hour)}},
		}
	}

	t.Run("assigned cannot be re-entered from assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAssigned), nil)

		_, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusAssigned)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("hold resumes into the interrupted assigned stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		held := stored(entities.WorkflowStatusOnHold)
		held.PreviousStatus = entities.WorkflowStatusAssigned
		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(held, nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusOnHold).DoAndReturn(
			func(_ context.Context, w entities.WorkAuthorization, _ entities.WorkflowStatus) (entities.WorkAuthorization, error) {
				if w.PreviousStatus != entities.WorkflowStatusOnHold {
					t.Fatalf("expected previous status on_hold, got %s", w.PreviousStatus)
				}
				last := w.TimeTracking[len(w.TimeTracking)-1]
				if last.Stage != entities.WorkflowStatusAssigned || last.EndTime != nil {
					t.Fatalf("expected a fresh open assigned window, got %+v", last)
				}
				return w, nil
			},
		)

		got, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusAssigned)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkflowStatus != entities.WorkflowStatusAssigned {
			t.Fatalf("expected assigned, got %s", got.WorkflowStatus)
		}
	})

	t.Run("customer may not authorize work", func(t *testing.T) {
		uc := NewWorkAuthorizationUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Transition(context.Background(), customer, "wa-1", entities.WorkflowStatusAuthorized)
		if !errors.Is(err, ErrUnauthorizedActor) {
			t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
		}
	})

	t.Run("other mechanic may not touch assigned work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAssigned), nil)

		_, err := uc.Transition(context.Background(), entities.Actor{ID: "mech-2", Role: entities.RoleMechanic}, "wa-1", entities.WorkflowStatusAuthorized)
		if !errors.Is(err, ErrUnauthorizedActor) {
			t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
		}
	})

	t.Run("customer cancels their own job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAuthorized), nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusAuthorized).DoAndReturn(
			func(_ context.Context, w entities.WorkAuthorization, _ entities.WorkflowStatus) (entities.WorkAuthorization, error) {
				return w, nil
			},
		)

		got, err := uc.Transition(context.Background(), customer, "wa-1", entities.WorkflowStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkflowStatus != entities.WorkflowStatusCancelled {
			t.Fatalf("expected cancelled, got %s", got.WorkflowStatus)
		}
	})

	t.Run("illegal edge is rejected without a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAssigned), nil)

		_, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusCompleted)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("completion stamps duration and refreshes stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		notifier := mock_interfaces.NewMockITransitionNotifier(ctrl)
		stats := newStubStats()
		uc := NewWorkAuthorizationUseCase(repo, nil, notifier, fixedClock(t, ctrl, now), stats)

		inProgress := stored(entities.WorkflowStatusInProgress)
		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(inProgress, nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusInProgress).DoAndReturn(
			func(_ context.Context, w entities.WorkAuthorization, _ entities.WorkflowStatus) (entities.WorkAuthorization, error) {
				if w.ActualDurationMinutes == nil || *w.ActualDurationMinutes != 60 {
					t.Fatalf("expected 60 actual minutes, got %v", w.ActualDurationMinutes)
				}
				return w, nil
			},
		)
		notifier.EXPECT().NotifyTransition(gomock.Any(), gomock.Any())

		got, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkflowStatus != entities.WorkflowStatusCompleted {
			t.Fatalf("expected completed, got %s", got.WorkflowStatus)
		}
		if stats.mechanicCalls != 1 {
			t.Fatalf("expected stats refresh after completion")
		}
	})

	t.Run("conflict retried with re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAuthorized), nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusAuthorized).Return(entities.WorkAuthorization{}, interfaces.ErrConflict),
			repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusAuthorized).DoAndReturn(
				func(_ context.Context, w entities.WorkAuthorization, _ entities.WorkflowStatus) (entities.WorkAuthorization, error) {
					return w, nil
				},
			),
		)

		if _, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusInProgress); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retries exhausted surface conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAuthorized), nil).Times(maxConflictRetries)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusAuthorized).Return(entities.WorkAuthorization{}, interfaces.ErrConflict).Times(maxConflictRetries)

		_, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusInProgress)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(entities.WorkAuthorization{}, nil)

		_, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusAuthorized)
		if !errors.Is(err, ErrAuthorizationNotFound) {
			t.Fatalf("expected ErrAuthorizationNotFound, got %v", err)
		}
	})

	t.Run("record deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkAuthorizationRepository(ctrl)
		uc := NewWorkAuthorizationUseCase(repo, nil, nil, fixedClock(t, ctrl, now), nil)

		repo.EXPECT().GetByID(gomock.Any(), "wa-1").Return(stored(entities.WorkflowStatusAuthorized), nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.WorkflowStatusAuthorized).Return(entities.WorkAuthorization{}, interfaces.ErrNotFound)

		_, err := uc.Transition(context.Background(), mechanic, "wa-1", entities.WorkflowStatusInProgress)
		if !errors.Is(err, ErrAuthorizationNotFound) {
			t.Fatalf("expected ErrAuthorizationNotFound, got %v", err)
		}
	})
}

type stubStats struct {
	mechanicCalls int
}

func newStubStats() *stubStats { return &stubStats{} }

func (s *stubStats) ForMechanic(context.Context, string) (entities.WorkflowStats, error) {
	s.mechanicCalls++
	return entities.WorkflowStats{TotalCompleted: 1}, nil
}

func (s *stubStats) ForShop(context.Context, string) (entities.WorkflowStats, error) {
	return entities.WorkflowStats{}, nil
}
