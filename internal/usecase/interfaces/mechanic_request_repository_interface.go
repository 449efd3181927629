package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// IMechanicRequestRepository abstracts DynamoDB persistence for
// MechanicRequest. ListByShopID returns queue order: FIFO by creation time,
// oldest first. Urgency is a display concern and never reorders the result.

type IMechanicRequestRepository interface {
	Create(ctx context.Context, r entities.MechanicRequest) (entities.MechanicRequest, error)
	GetByID(ctx context.Context, id string) (entities.MechanicRequest, error)
	UpdateIfStatus(ctx context.Context, r entities.MechanicRequest, expected entities.RequestStatus) (entities.MechanicRequest, error)
	ListByShopID(ctx context.Context, shopID string) ([]entities.MechanicRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.MechanicRequest, error)
}
