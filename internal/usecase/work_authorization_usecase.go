package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAuthorizationNotFound  = errors.New("work authorization not found")
	ErrInvalidAuthorizationID = errors.New("invalid work authorization id")
	ErrInvalidWorkflowStatus  = errors.New("invalid workflow status")
	ErrEstimateNotApproved    = errors.New("estimate is not approved")

	// ErrInvalidTransition re-exports the entity-level FSM rejection so
	// handlers can map one sentinel.
	ErrInvalidTransition = entities.ErrInvalidWorkflowTransition
)

// transitionRoles keys role checks off the transition table instead of
// re-implementing them per handler. A customer may abandon their own job;
// everything else is driven by the mechanic. assigned is reachable only by
// resuming a hold that interrupted it.
var transitionRoles = map[entities.WorkflowStatus][]entities.ActorRole{
	entities.WorkflowStatusAssigned:   {entities.RoleMechanic},
	entities.WorkflowStatusAuthorized: {entities.RoleMechanic},
	entities.WorkflowStatusInProgress: {entities.RoleMechanic},
	entities.WorkflowStatusCompleted:  {entities.RoleMechanic},
	entities.WorkflowStatusOnHold:     {entities.RoleMechanic},
	entities.WorkflowStatusCancelled:  {entities.RoleMechanic, entities.RoleCustomer},
}

// conflictBackoff spaces conditional-write retries. Short enough to stay
// inside an interactive request.
const conflictBackoff = 25 * time.Millisecond

// IWorkAuthorizationUseCase drives the work-authorization state machine:
// creation from an approved estimate, stage transitions with time
// accounting, and the lookups the dashboards need.

type IWorkAuthorizationUseCase interface {
	CreateFromApprovedEstimate(ctx context.Context, e entities.CostEstimate) (entities.WorkAuthorization, error)
	Transition(ctx context.Context, actor entities.Actor, id string, target entities.WorkflowStatus) (entities.WorkAuthorization, error)
	GetByID(ctx context.Context, id string) (entities.WorkAuthorization, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkAuthorization, error)
	ListByShopID(ctx context.Context, shopID string) ([]entities.WorkAuthorization, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkAuthorization, error)
}

type WorkAuthorizationUseCase struct {
	repo     interfaces.IWorkAuthorizationRepository
	requests interfaces.IMechanicRequestRepository
	notifier interfaces.ITransitionNotifier
	clock    interfaces.Clock
	stats    IWorkflowStatsUseCase
	log      *slog.Logger
}

var _ IWorkAuthorizationUseCase = (*WorkAuthorizationUseCase)(nil)
var _ AuthorizationCreator = (*WorkAuthorizationUseCase)(nil)

func NewWorkAuthorizationUseCase(
	repo interfaces.IWorkAuthorizationRepository,
	requests interfaces.IMechanicRequestRepository,
	notifier interfaces.ITransitionNotifier,
	clock interfaces.Clock,
	stats IWorkflowStatsUseCase,
) *WorkAuthorizationUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &WorkAuthorizationUseCase{
		repo:     repo,
		requests: requests,
		notifier: notifier,
		clock:    clock,
		stats:    stats,
		log:      slog.Default().With("component", "work_authorization"),
	}
}

// CreateFromApprovedEstimate opens the trackable unit of work seeded from
// the estimate the customer signed off on.
func (u *WorkAuthorizationUseCase) CreateFromApprovedEstimate(ctx context.Context, e entities.CostEstimate) (entities.WorkAuthorization, error) {
	if e.ID == "" {
		return entities.WorkAuthorization{}, ErrInvalidEstimateID
	}
	switch e.Status {
	case entities.EstimateStatusCustomerApproved, entities.EstimateStatusMechanicApproved, entities.EstimateStatusApproved:
	default:
		return entities.WorkAuthorization{}, ErrEstimateNotApproved
	}

	now := u.clock.Now()
	w := entities.NewWorkAuthorization(uuid.NewString(), e, now)
	u.carryRequestUrgency(ctx, &w)
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return entities.WorkAuthorization{}, err
	}
	u.log.Info("work authorization opened",
		"authorization_id", created.ID,
		"estimate_id", e.ID,
		"estimated_duration_minutes", created.EstimatedDurationMinutes)

	u.notifyAuthorization(ctx, created, "", entities.Actor{ID: e.CustomerID, Role: entities.RoleCustomer})
	return created, nil
}

// Transition moves an authorization one stage along the FSM. The cycle is
// read, validate against the table, write conditionally on the status being
// unchanged since the read; a lost race is retried a bounded number of
// times before Conflict is surfaced.
func (u *WorkAuthorizationUseCase) Transition(ctx context.Context, actor entities.Actor, id string, target entities.WorkflowStatus) (entities.WorkAuthorization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkAuthorization{}, ErrInvalidAuthorizationID
	}
	if !target.Valid() {
		return entities.WorkAuthorization{}, ErrInvalidWorkflowStatus
	}
	if roles := transitionRoles[target]; !actor.Is(roles...) {
		return entities.WorkAuthorization{}, ErrUnauthorizedActor
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * conflictBackoff)
		}

		w, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.WorkAuthorization{}, err
		}
		if w.ID == "" {
			return entities.WorkAuthorization{}, ErrAuthorizationNotFound
		}
		if err := u.checkOwnership(actor, w); err != nil {
			return entities.WorkAuthorization{}, err
		}

		from := w.WorkflowStatus
		next, err := w.Transition(target, u.clock.Now())
		if err != nil {
			// The FSM rejected the edge; w is unchanged by contract.
			return w, err
		}

		updated, err := u.repo.UpdateIfStatus(ctx, next, from)
		if errors.Is(err, interfaces.ErrConflict) {
			u.log.Warn("transition lost conditional write, retrying",
				"authorization_id", id, "target", target, "attempt", attempt+1)
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.WorkAuthorization{}, ErrAuthorizationNotFound
		}
		if err != nil {
			return entities.WorkAuthorization{}, err
		}

		u.notifyAuthorization(ctx, updated, from, actor)
		if target == entities.WorkflowStatusCompleted {
			u.logCompletionStats(ctx, updated)
		}
		return updated, nil
	}
	return entities.WorkAuthorization{}, ErrConflict
}

// carryRequestUrgency overlays the linked mechanic request's urgency onto a
// freshly opened authorization; the estimate itself does not carry one. A
// failed lookup leaves the default and is only logged.
func (u *WorkAuthorizationUseCase) carryRequestUrgency(ctx context.Context, w *entities.WorkAuthorization) {
	if u.requests == nil || w.MechanicRequestID == "" {
		return
	}
	req, err := u.requests.GetByID(ctx, w.MechanicRequestID)
	if err != nil {
		u.log.Warn("linked request lookup failed",
			"authorization_id", w.ID, "request_id", w.MechanicRequestID, "err", err)
		return
	}
	if req.ID != "" && req.Urgency.Valid() {
		w.Urgency = req.Urgency
	}
}

func (u *WorkAuthorizationUseCase) checkOwnership(actor entities.Actor, w entities.WorkAuthorization) error {
	switch actor.Role {
	case entities.RoleMechanic:
		if w.MechanicID != "" && w.MechanicID != actor.ID {
			return ErrUnauthorizedActor
		}
	case entities.RoleCustomer:
		if w.CustomerID != actor.ID {
			return ErrUnauthorizedActor
		}
	}
	return nil
}

// logCompletionStats refreshes the mechanic's derived metrics right after a
// completion. Statistics stay on-demand; this is observability, not cache.
func (u *WorkAuthorizationUseCase) logCompletionStats(ctx context.Context, w entities.WorkAuthorization) {
	if u.stats == nil || w.MechanicID == "" {
		return
	}
	stats, err := u.stats.ForMechanic(ctx, w.MechanicID)
	if err != nil {
		u.log.Warn("stats refresh after completion failed", "mechanic_id", w.MechanicID, "err", err)
		return
	}
	args := []any{"mechanic_id", w.MechanicID, "total_completed", stats.TotalCompleted}
	if stats.CompletionRate != nil {
		args = append(args, "completion_rate", *stats.CompletionRate)
	}
	if stats.AverageCompletionMinutes != nil {
		args = append(args, "average_completion_minutes", *stats.AverageCompletionMinutes)
	}
	u.log.Info("mechanic stats after completion", args...)
}

func (u *WorkAuthorizationUseCase) GetByID(ctx context.Context, id string) (entities.WorkAuthorization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkAuthorization{}, ErrInvalidAuthorizationID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkAuthorization{}, err
	}
	if w.ID == "" {
		return entities.WorkAuthorization{}, ErrAuthorizationNotFound
	}
	return w, nil
}

func (u *WorkAuthorizationUseCase) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkAuthorization, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return nil, ErrInvalidRequestMechanicID
	}
	return u.repo.ListByMechanicID(ctx, mechanicID)
}

func (u *WorkAuthorizationUseCase) ListByShopID(ctx context.Context, shopID string) ([]entities.WorkAuthorization, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidRequestShopID
	}
	return u.repo.ListByShopID(ctx, shopID)
}

func (u *WorkAuthorizationUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkAuthorization, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidEstimateCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *WorkAuthorizationUseCase) notifyAuthorization(ctx context.Context, w entities.WorkAuthorization, from entities.WorkflowStatus, actor entities.Actor) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyTransition(ctx, entities.TransitionEvent{
		EntityType: entities.EntityTypeWorkAuthorization,
		EntityID:   w.ID,
		FromStatus: string(from),
		ToStatus:   string(w.WorkflowStatus),
		ActorID:    actor.ID,
		Timestamp:  w.UpdatedAt,
	})
}
