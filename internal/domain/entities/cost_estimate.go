package entities

import (
	"fmt"
	"math"
	"time"
)

// EstimateStatus represents the lifecycle of a cost estimate (orçamento).
//
// Domain notes:
//   - The workflow-service is the source of truth for estimate review state.
//   - Estimates are created as drafts by the diagnosis collaborator and move
//     through mechanic review and customer counter-approval; `approved`,
//     `rejected`, `mechanic_rejected` and `customer_rejected` are terminal.

type EstimateStatus string

const (
	EstimateStatusDraft            EstimateStatus = "draft"
	EstimateStatusPendingMechanic  EstimateStatus = "shown_to_customer_pending_mechanic_approval"
	EstimateStatusMechanicApproved EstimateStatus = "mechanic_approved"
	EstimateStatusPendingCustomer  EstimateStatus = "pending_customer_approval"
	EstimateStatusCustomerApproved EstimateStatus = "customer_approved"
	EstimateStatusApproved         EstimateStatus = "approved"
	EstimateStatusRejected         EstimateStatus = "rejected"
	EstimateStatusMechanicRejected EstimateStatus = "mechanic_rejected"
	EstimateStatusCustomerRejected EstimateStatus = "customer_rejected"
)

// IsTerminal reports whether no further review action may touch the estimate.
// customer_approved is terminal for the review flow itself; the approved
// estimate is carried into a WorkAuthorization from there.
func (s EstimateStatus) IsTerminal() bool {
	switch s {
	case EstimateStatusCustomerApproved, EstimateStatusRejected,
		EstimateStatusMechanicRejected, EstimateStatusCustomerRejected:
		return true
	}
	return false
}

// ReviewDecision is the mechanic's verdict on a shared estimate.
type ReviewDecision string

const (
	ReviewDecisionApprove ReviewDecision = "approve"
	ReviewDecisionModify  ReviewDecision = "modify"
	ReviewDecisionReject  ReviewDecision = "reject"
)

func (d ReviewDecision) Valid() bool {
	switch d {
	case ReviewDecisionApprove, ReviewDecisionModify, ReviewDecisionReject:
		return true
	}
	return false
}

// breakdownEpsilon is the tolerance used when reconciling monetary totals.
// Estimate math may legitimately carry sub-cent rounding.
const breakdownEpsilon = 0.01

type PartItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type LaborCharge struct {
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Total      float64 `json:"total"`
}

// EstimateBreakdown is the priced composition of a repair proposal.
//
// Total is authoritative as written by the producer; it is re-validated
// (never silently recomputed) on every write so that a mismatch surfaces as
// a data-integrity warning instead of a quiet correction.
type EstimateBreakdown struct {
	Parts      []PartItem  `json:"parts,omitempty"`
	PartsTotal float64     `json:"parts_total"`
	Labor      LaborCharge `json:"labor"`
	ShopFees   float64     `json:"shop_fees,omitempty"`
	Tax        float64     `json:"tax"`
	Total      float64     `json:"total"`
}

// ReconcileWarnings validates the breakdown's arithmetic and returns one
// human-readable warning per mismatch beyond the cent epsilon. An empty
// slice means the totals reconcile.
func (b EstimateBreakdown) ReconcileWarnings() []string {
	var warnings []string

	if len(b.Parts) > 0 {
		sum := 0.0
		for _, p := range b.Parts {
			sum += p.Total
		}
		if math.Abs(sum-b.PartsTotal) > breakdownEpsilon {
			warnings = append(warnings, fmt.Sprintf(
				"parts items sum to %.2f but parts_total is %.2f", sum, b.PartsTotal))
		}
	}

	grand := b.PartsTotal + b.Labor.Total + b.ShopFees + b.Tax
	if math.Abs(grand-b.Total) > breakdownEpsilon {
		warnings = append(warnings, fmt.Sprintf(
			"breakdown components sum to %.2f but total is %.2f", grand, b.Total))
	}
	return warnings
}

type VehicleInfo struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate,omitempty"`
}

// CostEstimate is a priced repair proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id, sort key created_at
//   - GSI2 (shop_id-index): shop_id, sort key created_at
//
// Modification invariant:
//   - A mechanic may modify an estimate exactly once. The first modification
//     copies Breakdown into OriginalBreakdown; from then on OriginalBreakdown
//     is immutable and ModifiedBreakdown is the value used for pricing.
type CostEstimate struct {
	ID             string      `json:"id"`
	CustomerID     string      `json:"customer_id"`
	ShopID         string      `json:"shop_id,omitempty"`
	ConversationID string      `json:"conversation_id"`
	VehicleInfo    VehicleInfo `json:"vehicle_info"`

	Breakdown          EstimateBreakdown  `json:"breakdown"`
	OriginalBreakdown  *EstimateBreakdown `json:"original_breakdown,omitempty"`
	ModifiedBreakdown  *EstimateBreakdown `json:"modified_breakdown,omitempty"`
	IsModified         bool               `json:"is_modified"`
	ModifiedByMechanic string             `json:"modified_by_mechanic_id,omitempty"`
	ModifiedAt         *time.Time         `json:"modified_at,omitempty"`

	Status            EstimateStatus `json:"status"`
	Confidence        float64        `json:"confidence"`
	ServiceType       string         `json:"service_type,omitempty"`
	CustomerComment   string         `json:"customer_comment,omitempty"`
	MechanicNotes     string         `json:"mechanic_notes,omitempty"`
	CustomerNotes     string         `json:"customer_notes,omitempty"`
	MechanicRequestID string         `json:"mechanic_request_id,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// EffectiveBreakdown returns the breakdown that prices the work: the
// mechanic's modified version once one exists, the producer's otherwise.
func (e CostEstimate) EffectiveBreakdown() EstimateBreakdown {
	if e.IsModified && e.ModifiedBreakdown != nil {
		return *e.ModifiedBreakdown
	}
	return e.Breakdown
}

// CanShareWithMechanic reports whether the estimate may enter mechanic review.
func (e CostEstimate) CanShareWithMechanic() bool {
	return e.Status == EstimateStatusDraft || e.Status == EstimateStatusApproved
}
