package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// ICostEstimateRepository abstracts DynamoDB persistence for CostEstimate.
//
// The workflow-service must be able to:
//   - create a draft estimate when the diagnosis collaborator emits one
//   - update an estimate conditionally on its status being unchanged since
//     the caller's read (the store's conditional write is the only
//     serialization primitive in the system)
//   - list estimates per customer and per shop, newest first

type ICostEstimateRepository interface {
	Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error)
	GetByID(ctx context.Context, id string) (entities.CostEstimate, error)
	// UpdateIfStatus persists e only while the stored status still equals
	// expected. Returns ErrNotFound when the id is unknown and ErrConflict
	// when the status moved underneath the caller.
	UpdateIfStatus(ctx context.Context, e entities.CostEstimate, expected entities.EstimateStatus) (entities.CostEstimate, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.CostEstimate, error)
	ListByShopID(ctx context.Context, shopID string) ([]entities.CostEstimate, error)
}
