package memory

import (
	"context"
	"sort"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
)

type EstimateRepo struct {
	s *Store
}

var _ interfaces.ICostEstimateRepository = (*EstimateRepo)(nil)

func (r *EstimateRepo) Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.estimates[e.ID] = clone(e)
	return e, nil
}

func (r *EstimateRepo) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.estimates[id]
	if !ok {
		return entities.CostEstimate{}, nil
	}
	return clone(e), nil
}

func (r *EstimateRepo) UpdateIfStatus(ctx context.Context, e entities.CostEstimate, expected entities.EstimateStatus) (entities.CostEstimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.estimates[e.ID]
	if !ok {
		return entities.CostEstimate{}, interfaces.ErrNotFound
	}
	if current.Status != expected {
		return entities.CostEstimate{}, interfaces.ErrConflict
	}
	r.s.estimates[e.ID] = clone(e)
	return e, nil
}

func (r *EstimateRepo) ListByCustomerID(ctx context.Context, customerID string) ([]entities.CostEstimate, error) {
	return r.list(func(e entities.CostEstimate) bool { return e.CustomerID == customerID })
}

func (r *EstimateRepo) ListByShopID(ctx context.Context, shopID string) ([]entities.CostEstimate, error) {
	return r.list(func(e entities.CostEstimate) bool { return e.ShopID == shopID })
}

func (r *EstimateRepo) list(match func(entities.CostEstimate) bool) ([]entities.CostEstimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.CostEstimate
	for _, e := range r.s.estimates {
		if match(e) {
			out = append(out, clone(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
