package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_workflow/internal/domain/entities"
	mock_interfaces "mecanica_workflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMechanicRequestUseCase_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}

	t.Run("mechanic may not create", func(t *testing.T) {
		uc := NewMechanicRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}, CreateRequestCommand{ShopID: "shop-1", RequestMessage: "help"})
		if !errors.Is(err, ErrUnauthorizedActor) {
			t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		uc := NewMechanicRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), customer, CreateRequestCommand{ShopID: "shop-1", RequestMessage: "   "})
		if !errors.Is(err, ErrInvalidRequestMessage) {
			t.Fatalf("expected ErrInvalidRequestMessage, got %v", err)
		}
	})

	t.Run("unknown urgency", func(t *testing.T) {
		uc := NewMechanicRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), customer, CreateRequestCommand{ShopID: "shop-1", RequestMessage: "help", Urgency: "critical"})
		if !errors.Is(err, ErrInvalidRequestStatus) {
			t.Fatalf("expected ErrInvalidRequestStatus, got %v", err)
		}
	})

	t.Run("success defaults urgency and queues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewMechanicRequestUseCase(repo, nil, fixedClock(t, ctrl, now))

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.MechanicRequest{})).DoAndReturn(
			func(_ context.Context, r entities.MechanicRequest) (entities.MechanicRequest, error) {
				if r.Status != entities.RequestStatusQueued || r.Urgency != entities.UrgencyNormal {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.CustomerID != "cust-1" {
					t.Fatalf("expected actor as owner, got %q", r.CustomerID)
				}
				return r, nil
			},
		)

		if _, err := uc.Create(context.Background(), customer, CreateRequestCommand{ShopID: "shop-1", RequestMessage: "brakes squeal"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMechanicRequestUseCase_Assign(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mechanic := entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}

	t.Run("only queued requests are assignable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewMechanicRequestUseCase(repo, nil, fixedClock(t, ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MechanicRequest{ID: "req-1", Status: entities.RequestStatusAssigned}, nil)

		_, err := uc.Assign(context.Background(), mechanic, "req-1", "")
		if !errors.Is(err, ErrInvalidRequestTransition) {
			t.Fatalf("expected ErrInvalidRequestTransition, got %v", err)
		}
	})

	t.Run("defaults to the calling mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewMechanicRequestUseCase(repo, nil, fixedClock(t, ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MechanicRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.RequestStatusQueued}, nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.RequestStatusQueued).DoAndReturn(
			func(_ context.Context, r entities.MechanicRequest, _ entities.RequestStatus) (entities.MechanicRequest, error) {
				if r.AssignedMechanicID != "mech-1" || r.Status != entities.RequestStatusAssigned {
					t.Fatalf("unexpected assignment: %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.Assign(context.Background(), mechanic, "req-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMechanicRequestUseCase_UpdateStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mechanic := entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}

	t.Run("assignment must go through Assign", func(t *testing.T) {
		uc := NewMechanicRequestUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), mechanic, "req-1", entities.RequestStatusAssigned)
		if !errors.Is(err, ErrInvalidRequestTransition) {
			t.Fatalf("expected ErrInvalidRequestTransition, got %v", err)
		}
	})

	t.Run("illegal routing edge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewMechanicRequestUseCase(repo, nil, fixedClock(t, ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MechanicRequest{ID: "req-1", Status: entities.RequestStatusQueued}, nil)

		_, err := uc.UpdateStatus(context.Background(), mechanic, "req-1", entities.RequestStatusResponded)
		if !errors.Is(err, ErrInvalidRequestTransition) {
			t.Fatalf("expected ErrInvalidRequestTransition, got %v", err)
		}
	})

	t.Run("customer may close only their own request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewMechanicRequestUseCase(repo, nil, fixedClock(t, ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MechanicRequest{ID: "req-1", CustomerID: "someone-else", Status: entities.RequestStatusQueued}, nil)

		_, err := uc.UpdateStatus(context.Background(), entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}, "req-1", entities.RequestStatusClosed)
		if !errors.Is(err, ErrUnauthorizedActor) {
			t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
		}
	})

	t.Run("responded to closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRequestRepository(ctrl)
		uc := NewMechanicRequestUseCase(repo, nil, fixedClock(t, ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.MechanicRequest{ID: "req-1", Status: entities.RequestStatusResponded}, nil)
		repo.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), entities.RequestStatusResponded).DoAndReturn(
			func(_ context.Context, r entities.MechanicRequest, _ entities.RequestStatus) (entities.MechanicRequest, error) {
				return r, nil
			},
		)

		got, err := uc.UpdateStatus(context.Background(), mechanic, "req-1", entities.RequestStatusClosed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusClosed {
			t.Fatalf("expected closed, got %s", got.Status)
		}
	})
}
