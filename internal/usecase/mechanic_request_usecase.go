package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound          = errors.New("mechanic request not found")
	ErrInvalidRequestID         = errors.New("invalid mechanic request id")
	ErrInvalidRequestShopID     = errors.New("invalid shop id")
	ErrInvalidRequestMessage    = errors.New("invalid request message")
	ErrInvalidRequestMechanicID = errors.New("invalid mechanic id")
	ErrInvalidRequestStatus     = errors.New("invalid request status")
	ErrInvalidRequestTransition = errors.New("request status does not allow this action")
)

type CreateRequestCommand struct {
	ShopID           string
	RequestMessage   string
	Urgency          entities.Urgency
	ConversationSnap json.RawMessage
}

// IMechanicRequestUseCase routes customer asks into per-shop queues and
// hands them to mechanics. Queue order is FIFO within a shop; urgency is
// display metadata only.

type IMechanicRequestUseCase interface {
	Create(ctx context.Context, actor entities.Actor, cmd CreateRequestCommand) (entities.MechanicRequest, error)
	Assign(ctx context.Context, actor entities.Actor, requestID, mechanicID string) (entities.MechanicRequest, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, requestID string, status entities.RequestStatus) (entities.MechanicRequest, error)
	GetByID(ctx context.Context, id string) (entities.MechanicRequest, error)
	ListByShopID(ctx context.Context, shopID string) ([]entities.MechanicRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.MechanicRequest, error)
}

type MechanicRequestUseCase struct {
	repo     interfaces.IMechanicRequestRepository
	notifier interfaces.ITransitionNotifier
	clock    interfaces.Clock
}

var _ IMechanicRequestUseCase = (*MechanicRequestUseCase)(nil)

func NewMechanicRequestUseCase(
	repo interfaces.IMechanicRequestRepository,
	notifier interfaces.ITransitionNotifier,
	clock interfaces.Clock,
) *MechanicRequestUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &MechanicRequestUseCase{repo: repo, notifier: notifier, clock: clock}
}

func (u *MechanicRequestUseCase) Create(ctx context.Context, actor entities.Actor, cmd CreateRequestCommand) (entities.MechanicRequest, error) {
	if !actor.Is(entities.RoleCustomer) {
		return entities.MechanicRequest{}, ErrUnauthorizedActor
	}
	shopID := strings.TrimSpace(cmd.ShopID)
	if shopID == "" {
		return entities.MechanicRequest{}, ErrInvalidRequestShopID
	}
	message := strings.TrimSpace(cmd.RequestMessage)
	if message == "" {
		return entities.MechanicRequest{}, ErrInvalidRequestMessage
	}
	urgency := cmd.Urgency
	if urgency == "" {
		urgency = entities.UrgencyNormal
	}
	if !urgency.Valid() {
		return entities.MechanicRequest{}, ErrInvalidRequestStatus
	}

	now := u.clock.Now()
	r := entities.MechanicRequest{
		ID:               uuid.NewString(),
		CustomerID:       actor.ID,
		ShopID:           shopID,
		RequestMessage:   message,
		Urgency:          urgency,
		Status:           entities.RequestStatusQueued,
		ConversationSnap: cmd.ConversationSnap,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.MechanicRequest{}, err
	}
	u.notifyRequest(ctx, created, "", actor)
	return created, nil
}

// Assign hands a queued request to a mechanic. AssignedMechanicID is set
// exactly once; the only legal edge is queued→assigned.
func (u *MechanicRequestUseCase) Assign(ctx context.Context, actor entities.Actor, requestID, mechanicID string) (entities.MechanicRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.MechanicRequest{}, ErrInvalidRequestID
	}
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		mechanicID = actor.ID
	}
	if mechanicID == "" {
		return entities.MechanicRequest{}, ErrInvalidRequestMechanicID
	}
	if !actor.Is(entities.RoleMechanic) {
		return entities.MechanicRequest{}, ErrUnauthorizedActor
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		r, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return entities.MechanicRequest{}, err
		}
		if r.ID == "" {
			return entities.MechanicRequest{}, ErrRequestNotFound
		}
		if r.Status != entities.RequestStatusQueued {
			return entities.MechanicRequest{}, ErrInvalidRequestTransition
		}

		from := r.Status
		r.AssignedMechanicID = mechanicID
		r.Status = entities.RequestStatusAssigned
		r.UpdatedAt = u.clock.Now()

		updated, err := u.repo.UpdateIfStatus(ctx, r, from)
		if errors.Is(err, interfaces.ErrConflict) {
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.MechanicRequest{}, ErrRequestNotFound
		}
		if err != nil {
			return entities.MechanicRequest{}, err
		}
		u.notifyRequest(ctx, updated, from, actor)
		return updated, nil
	}
	return entities.MechanicRequest{}, ErrConflict
}

// UpdateStatus moves routing state along the small queued|assigned|
// responded|closed set. Assignment must go through Assign, which also
// records the mechanic.
func (u *MechanicRequestUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, requestID string, status entities.RequestStatus) (entities.MechanicRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.MechanicRequest{}, ErrInvalidRequestID
	}
	if !status.Valid() || status == entities.RequestStatusQueued {
		return entities.MechanicRequest{}, ErrInvalidRequestStatus
	}
	if status == entities.RequestStatusAssigned {
		return entities.MechanicRequest{}, ErrInvalidRequestTransition
	}
	if !actor.Is(entities.RoleMechanic, entities.RoleCustomer) {
		return entities.MechanicRequest{}, ErrUnauthorizedActor
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		r, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return entities.MechanicRequest{}, err
		}
		if r.ID == "" {
			return entities.MechanicRequest{}, ErrRequestNotFound
		}
		if actor.Role == entities.RoleCustomer && actor.ID != r.CustomerID {
			return entities.MechanicRequest{}, ErrUnauthorizedActor
		}
		if !r.Status.CanTransitionTo(status) {
			return entities.MechanicRequest{}, ErrInvalidRequestTransition
		}

		from := r.Status
		r.Status = status
		r.UpdatedAt = u.clock.Now()

		updated, err := u.repo.UpdateIfStatus(ctx, r, from)
		if errors.Is(err, interfaces.ErrConflict) {
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.MechanicRequest{}, ErrRequestNotFound
		}
		if err != nil {
			return entities.MechanicRequest{}, err
		}
		u.notifyRequest(ctx, updated, from, actor)
		return updated, nil
	}
	return entities.MechanicRequest{}, ErrConflict
}

func (u *MechanicRequestUseCase) GetByID(ctx context.Context, id string) (entities.MechanicRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MechanicRequest{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MechanicRequest{}, err
	}
	if r.ID == "" {
		return entities.MechanicRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *MechanicRequestUseCase) ListByShopID(ctx context.Context, shopID string) ([]entities.MechanicRequest, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidRequestShopID
	}
	return u.repo.ListByShopID(ctx, shopID)
}

func (u *MechanicRequestUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.MechanicRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidEstimateCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *MechanicRequestUseCase) notifyRequest(ctx context.Context, r entities.MechanicRequest, from entities.RequestStatus, actor entities.Actor) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyTransition(ctx, entities.TransitionEvent{
		EntityType: entities.EntityTypeMechanicRequest,
		EntityID:   r.ID,
		FromStatus: string(from),
		ToStatus:   string(r.Status),
		ActorID:    actor.ID,
		Timestamp:  r.UpdatedAt,
	})
}
