package request

import (
	"encoding/json"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"
)

type CreateMechanicRequestRequest struct {
	ShopID           string          `json:"shop_id" binding:"required"`
	RequestMessage   string          `json:"request_message" binding:"required"`
	Urgency          string          `json:"urgency"`
	ConversationSnap json.RawMessage `json:"conversation_snapshot"`
}

func (r CreateMechanicRequestRequest) ToCommand() usecase.CreateRequestCommand {
	return usecase.CreateRequestCommand{
		ShopID:           r.ShopID,
		RequestMessage:   r.RequestMessage,
		Urgency:          entities.Urgency(r.Urgency),
		ConversationSnap: r.ConversationSnap,
	}
}

type AssignMechanicRequestRequest struct {
	MechanicID string `json:"mechanic_id"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
