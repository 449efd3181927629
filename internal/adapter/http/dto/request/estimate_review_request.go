package request

import (
	"strings"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"
)

type PartItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total" binding:"required"`
}

type LaborChargeRequest struct {
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Total      float64 `json:"total"`
}

type BreakdownRequest struct {
	Parts      []PartItemRequest  `json:"parts"`
	PartsTotal float64            `json:"parts_total"`
	Labor      LaborChargeRequest `json:"labor"`
	ShopFees   float64            `json:"shop_fees"`
	Tax        float64            `json:"tax"`
	Total      float64            `json:"total" binding:"required"`
}

func (r BreakdownRequest) ToEntity() entities.EstimateBreakdown {
	parts := make([]entities.PartItem, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.PartItem{
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  p.Quantity,
			Total:     p.Total,
		})
	}
	return entities.EstimateBreakdown{
		Parts:      parts,
		PartsTotal: r.PartsTotal,
		Labor:      entities.LaborCharge(r.Labor),
		ShopFees:   r.ShopFees,
		Tax:        r.Tax,
		Total:      r.Total,
	}
}

type VehicleInfoRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate"`
}

// CreateEstimateDraftRequest is the ingress payload emitted by the
// diagnosis collaborator. It carries no status field; drafts always start
// at draft.
type CreateEstimateDraftRequest struct {
	CustomerID        string             `json:"customer_id" binding:"required"`
	ShopID            string             `json:"shop_id"`
	ConversationID    string             `json:"conversation_id"`
	VehicleInfo       VehicleInfoRequest `json:"vehicle_info"`
	Breakdown         BreakdownRequest   `json:"breakdown" binding:"required"`
	Confidence        float64            `json:"confidence"`
	ServiceType       string             `json:"service_type"`
	MechanicRequestID string             `json:"mechanic_request_id"`
	ValidUntil        *time.Time         `json:"valid_until"`
}

func (r CreateEstimateDraftRequest) ToCommand() usecase.CreateDraftCommand {
	return usecase.CreateDraftCommand{
		CustomerID:        r.CustomerID,
		ShopID:            r.ShopID,
		ConversationID:    r.ConversationID,
		VehicleInfo:       entities.VehicleInfo(r.VehicleInfo),
		Breakdown:         r.Breakdown.ToEntity(),
		Confidence:        r.Confidence,
		ServiceType:       r.ServiceType,
		MechanicRequestID: r.MechanicRequestID,
		ValidUntil:        r.ValidUntil,
	}
}

type ShareEstimateRequest struct {
	ShopID          string `json:"shop_id" binding:"required"`
	CustomerComment string `json:"customer_comment"`
}

type ReviewEstimateRequest struct {
	Decision          string            `json:"decision" binding:"required"`
	ModifiedBreakdown *BreakdownRequest `json:"modified_breakdown"`
	Notes             string            `json:"notes"`
}

func (r ReviewEstimateRequest) ToCommand(estimateID string) usecase.ReviewCommand {
	cmd := usecase.ReviewCommand{
		EstimateID: estimateID,
		Decision:   entities.ReviewDecision(strings.ToLower(strings.TrimSpace(r.Decision))),
		Notes:      r.Notes,
	}
	if r.ModifiedBreakdown != nil {
		b := r.ModifiedBreakdown.ToEntity()
		cmd.ModifiedBreakdown = &b
	}
	return cmd
}

type RespondReviewRequest struct {
	Decision      string `json:"decision" binding:"required"`
	CustomerNotes string `json:"customer_notes"`
}

func (r RespondReviewRequest) ToCommand(estimateID string) usecase.ReviewResponseCommand {
	return usecase.ReviewResponseCommand{
		EstimateID:    estimateID,
		Decision:      entities.ReviewDecision(strings.ToLower(strings.TrimSpace(r.Decision))),
		CustomerNotes: r.CustomerNotes,
	}
}
