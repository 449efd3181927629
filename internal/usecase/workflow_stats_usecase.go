package usecase

import (
	"context"
	"strings"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
)

// IWorkflowStatsUseCase derives shop and mechanic metrics on demand from
// authoritative time-tracking data. No cached aggregate is ever treated as
// a source of truth; a slightly stale read snapshot is acceptable.

type IWorkflowStatsUseCase interface {
	ForMechanic(ctx context.Context, mechanicID string) (entities.WorkflowStats, error)
	ForShop(ctx context.Context, shopID string) (entities.WorkflowStats, error)
}

type WorkflowStatsUseCase struct {
	repo   interfaces.IWorkAuthorizationRepository
	policy entities.StatsPolicy
}

var _ IWorkflowStatsUseCase = (*WorkflowStatsUseCase)(nil)

func NewWorkflowStatsUseCase(repo interfaces.IWorkAuthorizationRepository, policy entities.StatsPolicy) *WorkflowStatsUseCase {
	return &WorkflowStatsUseCase{repo: repo, policy: policy}
}

func (u *WorkflowStatsUseCase) ForMechanic(ctx context.Context, mechanicID string) (entities.WorkflowStats, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.WorkflowStats{}, ErrInvalidRequestMechanicID
	}
	items, err := u.repo.ListByMechanicID(ctx, mechanicID)
	if err != nil {
		return entities.WorkflowStats{}, err
	}
	return entities.ComputeWorkflowStats(items, u.policy), nil
}

func (u *WorkflowStatsUseCase) ForShop(ctx context.Context, shopID string) (entities.WorkflowStats, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.WorkflowStats{}, ErrInvalidRequestShopID
	}
	items, err := u.repo.ListByShopID(ctx, shopID)
	if err != nil {
		return entities.WorkflowStats{}, err
	}
	return entities.ComputeWorkflowStats(items, u.policy), nil
}
