package memory

import (
	"context"
	"sort"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
)

type RequestRepo struct {
	s *Store
}

var _ interfaces.IMechanicRequestRepository = (*RequestRepo)(nil)

func (r *RequestRepo) Create(ctx context.Context, req entities.MechanicRequest) (entities.MechanicRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.requests[req.ID] = clone(req)
	return req, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id string) (entities.MechanicRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return entities.MechanicRequest{}, nil
	}
	return clone(req), nil
}

func (r *RequestRepo) UpdateIfStatus(ctx context.Context, req entities.MechanicRequest, expected entities.RequestStatus) (entities.MechanicRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.requests[req.ID]
	if !ok {
		return entities.MechanicRequest{}, interfaces.ErrNotFound
	}
	if current.Status != expected {
		return entities.MechanicRequest{}, interfaces.ErrConflict
	}
	r.s.requests[req.ID] = clone(req)
	return req, nil
}

// ListByShopID returns queue order: FIFO by creation time, oldest first.
func (r *RequestRepo) ListByShopID(ctx context.Context, shopID string) ([]entities.MechanicRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.MechanicRequest
	for _, req := range r.s.requests {
		if req.ShopID == shopID {
			out = append(out, clone(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *RequestRepo) ListByCustomerID(ctx context.Context, customerID string) ([]entities.MechanicRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.MechanicRequest
	for _, req := range r.s.requests {
		if req.CustomerID == customerID {
			out = append(out, clone(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
