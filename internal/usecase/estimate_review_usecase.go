package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound          = errors.New("estimate not found")
	ErrInvalidEstimateID         = errors.New("invalid estimate id")
	ErrInvalidEstimateCustomerID = errors.New("invalid customer id")
	ErrInvalidEstimateShopID     = errors.New("invalid shop id")
	ErrInvalidEstimateTotal      = errors.New("invalid estimate total")
	ErrInvalidReviewDecision     = errors.New("invalid review decision")
	ErrMissingModifiedBreakdown  = errors.New("modified breakdown is required for a modify decision")
	ErrMissingCustomerNotes      = errors.New("customer notes are required when rejecting a review")
	ErrEstimateNotReviewable     = errors.New("estimate status does not allow this action")
)

// AuthorizationCreator opens a WorkAuthorization from an approved estimate.
// Implemented by WorkAuthorizationUseCase; declared here so the review flow
// depends on the capability, not the whole use case.
type AuthorizationCreator interface {
	CreateFromApprovedEstimate(ctx context.Context, e entities.CostEstimate) (entities.WorkAuthorization, error)
}

type CreateDraftCommand struct {
	CustomerID        string
	ShopID            string
	ConversationID    string
	VehicleInfo       entities.VehicleInfo
	Breakdown         entities.EstimateBreakdown
	Confidence        float64
	ServiceType       string
	MechanicRequestID string
	ValidUntil        *time.Time
}

type ReviewCommand struct {
	EstimateID        string
	Decision          entities.ReviewDecision
	ModifiedBreakdown *entities.EstimateBreakdown
	Notes             string
}

type ReviewResponseCommand struct {
	EstimateID    string
	Decision      entities.ReviewDecision
	CustomerNotes string
}

// ReviewOutcome carries the updated estimate plus any data-integrity
// warnings produced while reconciling totals. Warnings never fail the
// operation; estimate math may legitimately include rounding.
type ReviewOutcome struct {
	Estimate      entities.CostEstimate
	Warnings      []string
	Authorization *entities.WorkAuthorization
}

// IEstimateReviewUseCase owns the CostEstimate review lifecycle: draft
// intake from the diagnosis collaborator, mechanic review/modification and
// the customer's counter-response.

type IEstimateReviewUseCase interface {
	CreateDraft(ctx context.Context, cmd CreateDraftCommand) (ReviewOutcome, error)
	ShareWithMechanic(ctx context.Context, actor entities.Actor, estimateID, shopID, customerComment string) (entities.CostEstimate, error)
	Review(ctx context.Context, actor entities.Actor, cmd ReviewCommand) (ReviewOutcome, error)
	RespondToReview(ctx context.Context, actor entities.Actor, cmd ReviewResponseCommand) (ReviewOutcome, error)
	GetByID(ctx context.Context, id string) (entities.CostEstimate, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.CostEstimate, error)
}

type EstimateReviewUseCase struct {
	repo     interfaces.ICostEstimateRepository
	authz    AuthorizationCreator
	notifier interfaces.ITransitionNotifier
	clock    interfaces.Clock
}

var _ IEstimateReviewUseCase = (*EstimateReviewUseCase)(nil)

func NewEstimateReviewUseCase(
	repo interfaces.ICostEstimateRepository,
	authz AuthorizationCreator,
	notifier interfaces.ITransitionNotifier,
	clock interfaces.Clock,
) *EstimateReviewUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &EstimateReviewUseCase{repo: repo, authz: authz, notifier: notifier, clock: clock}
}

// CreateDraft ingests a diagnosis-collaborator estimate. The payload carries
// no status field; every estimate starts at draft.
func (u *EstimateReviewUseCase) CreateDraft(ctx context.Context, cmd CreateDraftCommand) (ReviewOutcome, error) {
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return ReviewOutcome{}, ErrInvalidEstimateCustomerID
	}
	if cmd.Breakdown.Total <= 0 {
		return ReviewOutcome{}, ErrInvalidEstimateTotal
	}

	now := u.clock.Now()
	e := entities.CostEstimate{
		ID:                uuid.NewString(),
		CustomerID:        customerID,
		ShopID:            strings.TrimSpace(cmd.ShopID),
		ConversationID:    strings.TrimSpace(cmd.ConversationID),
		VehicleInfo:       cmd.VehicleInfo,
		Breakdown:         cmd.Breakdown,
		Status:            entities.EstimateStatusDraft,
		Confidence:        cmd.Confidence,
		ServiceType:       strings.TrimSpace(cmd.ServiceType),
		MechanicRequestID: strings.TrimSpace(cmd.MechanicRequestID),
		CreatedAt:         now,
		UpdatedAt:         now,
		ValidUntil:        cmd.ValidUntil,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return ReviewOutcome{}, err
	}
	return ReviewOutcome{Estimate: created, Warnings: created.Breakdown.ReconcileWarnings()}, nil
}

// ShareWithMechanic routes a draft (or previously approved) estimate into
// mechanic review for the given shop.
func (u *EstimateReviewUseCase) ShareWithMechanic(ctx context.Context, actor entities.Actor, estimateID, shopID, customerComment string) (entities.CostEstimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.CostEstimate{}, ErrInvalidEstimateID
	}
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.CostEstimate{}, ErrInvalidEstimateShopID
	}
	if !actor.Is(entities.RoleCustomer) {
		return entities.CostEstimate{}, ErrUnauthorizedActor
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		e, err := u.repo.GetByID(ctx, estimateID)
		if err != nil {
			return entities.CostEstimate{}, err
		}
		if e.ID == "" {
			return entities.CostEstimate{}, ErrEstimateNotFound
		}
		if actor.Role == entities.RoleCustomer && actor.ID != e.CustomerID {
			return entities.CostEstimate{}, ErrUnauthorizedActor
		}
		if !e.CanShareWithMechanic() {
			return entities.CostEstimate{}, ErrEstimateNotReviewable
		}

		from := e.Status
		e.ShopID = shopID
		e.CustomerComment = strings.TrimSpace(customerComment)
		e.Status = entities.EstimateStatusPendingMechanic
		e.UpdatedAt = u.clock.Now()

		updated, err := u.repo.UpdateIfStatus(ctx, e, from)
		if errors.Is(err, interfaces.ErrConflict) {
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.CostEstimate{}, ErrEstimateNotFound
		}
		if err != nil {
			return entities.CostEstimate{}, err
		}
		u.notifyEstimate(ctx, updated, from, actor)
		return updated, nil
	}
	return entities.CostEstimate{}, ErrConflict
}

// Review applies the mechanic's decision. Modification is allowed exactly
// once per estimate: the first modify freezes the producer breakdown into
// OriginalBreakdown so the before/after comparison stays meaningful.
func (u *EstimateReviewUseCase) Review(ctx context.Context, actor entities.Actor, cmd ReviewCommand) (ReviewOutcome, error) {
	estimateID := strings.TrimSpace(cmd.EstimateID)
	if estimateID == "" {
		return ReviewOutcome{}, ErrInvalidEstimateID
	}
	if !cmd.Decision.Valid() {
		return ReviewOutcome{}, ErrInvalidReviewDecision
	}
	if cmd.Decision == entities.ReviewDecisionModify && cmd.ModifiedBreakdown == nil {
		return ReviewOutcome{}, ErrMissingModifiedBreakdown
	}
	if !actor.Is(entities.RoleMechanic) {
		return ReviewOutcome{}, ErrUnauthorizedActor
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		e, err := u.repo.GetByID(ctx, estimateID)
		if err != nil {
			return ReviewOutcome{}, err
		}
		if e.ID == "" {
			return ReviewOutcome{}, ErrEstimateNotFound
		}
		if e.Status != entities.EstimateStatusPendingMechanic {
			return ReviewOutcome{}, ErrEstimateNotReviewable
		}

		from := e.Status
		now := u.clock.Now()
		var warnings []string

		switch cmd.Decision {
		case entities.ReviewDecisionApprove:
			e.Status = entities.EstimateStatusMechanicApproved
		case entities.ReviewDecisionReject:
			e.Status = entities.EstimateStatusMechanicRejected
		case entities.ReviewDecisionModify:
			if e.OriginalBreakdown == nil {
				original := e.Breakdown
				e.OriginalBreakdown = &original
			}
			modified := *cmd.ModifiedBreakdown
			e.ModifiedBreakdown = &modified
			e.IsModified = true
			e.ModifiedByMechanic = actor.ID
			e.ModifiedAt = &now
			e.Status = entities.EstimateStatusPendingCustomer
			warnings = modified.ReconcileWarnings()
		}
		if notes := strings.TrimSpace(cmd.Notes); notes != "" {
			e.MechanicNotes = notes
		}
		e.UpdatedAt = now

		updated, err := u.repo.UpdateIfStatus(ctx, e, from)
		if errors.Is(err, interfaces.ErrConflict) {
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return ReviewOutcome{}, ErrEstimateNotFound
		}
		if err != nil {
			return ReviewOutcome{}, err
		}
		u.notifyEstimate(ctx, updated, from, actor)
		return ReviewOutcome{Estimate: updated, Warnings: warnings}, nil
	}
	return ReviewOutcome{}, ErrConflict
}

// RespondToReview records the customer's answer to a mechanic modification.
// An approval converts the estimate into a WorkAuthorization; a rejection
// demands a reason, since a rejection without one cannot be actioned.
func (u *EstimateReviewUseCase) RespondToReview(ctx context.Context, actor entities.Actor, cmd ReviewResponseCommand) (ReviewOutcome, error) {
	estimateID := strings.TrimSpace(cmd.EstimateID)
	if estimateID == "" {
		return ReviewOutcome{}, ErrInvalidEstimateID
	}
	if cmd.Decision != entities.ReviewDecisionApprove && cmd.Decision != entities.ReviewDecisionReject {
		return ReviewOutcome{}, ErrInvalidReviewDecision
	}
	if cmd.Decision == entities.ReviewDecisionReject && strings.TrimSpace(cmd.CustomerNotes) == "" {
		return ReviewOutcome{}, ErrMissingCustomerNotes
	}
	if !actor.Is(entities.RoleCustomer) {
		return ReviewOutcome{}, ErrUnauthorizedActor
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		e, err := u.repo.GetByID(ctx, estimateID)
		if err != nil {
			return ReviewOutcome{}, err
		}
		if e.ID == "" {
			return ReviewOutcome{}, ErrEstimateNotFound
		}
		if actor.Role == entities.RoleCustomer && actor.ID != e.CustomerID {
			return ReviewOutcome{}, ErrUnauthorizedActor
		}
		if e.Status != entities.EstimateStatusPendingCustomer {
			return ReviewOutcome{}, ErrEstimateNotReviewable
		}

		from := e.Status
		if cmd.Decision == entities.ReviewDecisionApprove {
			e.Status = entities.EstimateStatusCustomerApproved
		} else {
			e.Status = entities.EstimateStatusCustomerRejected
		}
		if notes := strings.TrimSpace(cmd.CustomerNotes); notes != "" {
			e.CustomerNotes = notes
		}
		e.UpdatedAt = u.clock.Now()

		updated, err := u.repo.UpdateIfStatus(ctx, e, from)
		if errors.Is(err, interfaces.ErrConflict) {
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return ReviewOutcome{}, ErrEstimateNotFound
		}
		if err != nil {
			return ReviewOutcome{}, err
		}
		u.notifyEstimate(ctx, updated, from, actor)

		outcome := ReviewOutcome{Estimate: updated, Warnings: updated.EffectiveBreakdown().ReconcileWarnings()}
		if cmd.Decision == entities.ReviewDecisionApprove && u.authz != nil {
			w, err := u.authz.CreateFromApprovedEstimate(ctx, updated)
			if err != nil {
				return outcome, err
			}
			outcome.Authorization = &w
		}
		return outcome, nil
	}
	return ReviewOutcome{}, ErrConflict
}

func (u *EstimateReviewUseCase) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostEstimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if e.ID == "" {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateReviewUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.CostEstimate, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidEstimateCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *EstimateReviewUseCase) notifyEstimate(ctx context.Context, e entities.CostEstimate, from entities.EstimateStatus, actor entities.Actor) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyTransition(ctx, entities.TransitionEvent{
		EntityType: entities.EntityTypeCostEstimate,
		EntityID:   e.ID,
		FromStatus: string(from),
		ToStatus:   string(e.Status),
		ActorID:    actor.ID,
		Timestamp:  e.UpdatedAt,
	})
}
