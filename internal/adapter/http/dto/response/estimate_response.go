package response

import (
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"
)

type EstimateResponse struct {
	ID                 string                      `json:"id"`
	CustomerID         string                      `json:"customer_id"`
	ShopID             string                      `json:"shop_id,omitempty"`
	ConversationID     string                      `json:"conversation_id,omitempty"`
	VehicleInfo        entities.VehicleInfo        `json:"vehicle_info"`
	Breakdown          entities.EstimateBreakdown  `json:"breakdown"`
	OriginalBreakdown  *entities.EstimateBreakdown `json:"original_breakdown,omitempty"`
	ModifiedBreakdown  *entities.EstimateBreakdown `json:"modified_breakdown,omitempty"`
	IsModified         bool                        `json:"is_modified"`
	ModifiedByMechanic string                      `json:"modified_by_mechanic_id,omitempty"`
	ModifiedAt         *time.Time                  `json:"modified_at,omitempty"`
	Status             string                      `json:"status"`
	Confidence         float64                     `json:"confidence,omitempty"`
	ServiceType        string                      `json:"service_type,omitempty"`
	CustomerComment    string                      `json:"customer_comment,omitempty"`
	MechanicNotes      string                      `json:"mechanic_notes,omitempty"`
	CustomerNotes      string                      `json:"customer_notes,omitempty"`
	MechanicRequestID  string                      `json:"mechanic_request_id,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
	ValidUntil         *time.Time                  `json:"valid_until,omitempty"`
}

func FromEstimate(e entities.CostEstimate) EstimateResponse {
	return EstimateResponse{
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		ShopID:             e.ShopID,
		ConversationID:     e.ConversationID,
		VehicleInfo:        e.VehicleInfo,
		Breakdown:          e.Breakdown,
		OriginalBreakdown:  e.OriginalBreakdown,
		ModifiedBreakdown:  e.ModifiedBreakdown,
		IsModified:         e.IsModified,
		ModifiedByMechanic: e.ModifiedByMechanic,
		ModifiedAt:         e.ModifiedAt,
		Status:             string(e.Status),
		Confidence:         e.Confidence,
		ServiceType:        e.ServiceType,
		CustomerComment:    e.CustomerComment,
		MechanicNotes:      e.MechanicNotes,
		CustomerNotes:      e.CustomerNotes,
		MechanicRequestID:  e.MechanicRequestID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
		ValidUntil:         e.ValidUntil,
	}
}

func FromEstimates(items []entities.CostEstimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEstimate(e))
	}
	return out
}

// ReviewOutcomeResponse attaches data-integrity warnings and, on customer
// approval, the work authorization the approval opened.
type ReviewOutcomeResponse struct {
	Estimate          EstimateResponse           `json:"estimate"`
	Warnings          []string                   `json:"warnings,omitempty"`
	WorkAuthorization *WorkAuthorizationResponse `json:"work_authorization,omitempty"`
}

func FromReviewOutcome(o usecase.ReviewOutcome) ReviewOutcomeResponse {
	resp := ReviewOutcomeResponse{
		Estimate: FromEstimate(o.Estimate),
		Warnings: o.Warnings,
	}
	if o.Authorization != nil {
		w := FromWorkAuthorization(*o.Authorization)
		resp.WorkAuthorization = &w
	}
	return resp
}
