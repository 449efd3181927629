package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// IWorkAuthorizationRepository abstracts DynamoDB persistence for
// WorkAuthorization. The state machine is the sole writer of workflow_status
// and time_tracking; every status write goes through UpdateIfStatus.

type IWorkAuthorizationRepository interface {
	Create(ctx context.Context, w entities.WorkAuthorization) (entities.WorkAuthorization, error)
	GetByID(ctx context.Context, id string) (entities.WorkAuthorization, error)
	UpdateIfStatus(ctx context.Context, w entities.WorkAuthorization, expected entities.WorkflowStatus) (entities.WorkAuthorization, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkAuthorization, error)
	ListByShopID(ctx context.Context, shopID string) ([]entities.WorkAuthorization, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkAuthorization, error)
}
