package memory

import (
	"context"
	"sort"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
)

type AuthorizationRepo struct {
	s *Store
}

var _ interfaces.IWorkAuthorizationRepository = (*AuthorizationRepo)(nil)

func (r *AuthorizationRepo) Create(ctx context.Context, w entities.WorkAuthorization) (entities.WorkAuthorization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.authorizations[w.ID] = clone(w)
	return w, nil
}

func (r *AuthorizationRepo) GetByID(ctx context.Context, id string) (entities.WorkAuthorization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.authorizations[id]
	if !ok {
		return entities.WorkAuthorization{}, nil
	}
	return clone(w), nil
}

func (r *AuthorizationRepo) UpdateIfStatus(ctx context.Context, w entities.WorkAuthorization, expected entities.WorkflowStatus) (entities.WorkAuthorization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.authorizations[w.ID]
	if !ok {
		return entities.WorkAuthorization{}, interfaces.ErrNotFound
	}
	if current.WorkflowStatus != expected {
		return entities.WorkAuthorization{}, interfaces.ErrConflict
	}
	r.s.authorizations[w.ID] = clone(w)
	return w, nil
}

func (r *AuthorizationRepo) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkAuthorization, error) {
	return r.list(func(w entities.WorkAuthorization) bool { return w.MechanicID == mechanicID })
}

func (r *AuthorizationRepo) ListByShopID(ctx context.Context, shopID string) ([]entities.WorkAuthorization, error) {
	return r.list(func(w entities.WorkAuthorization) bool { return w.ShopID == shopID })
}

func (r *AuthorizationRepo) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkAuthorization, error) {
	return r.list(func(w entities.WorkAuthorization) bool { return w.CustomerID == customerID })
}

func (r *AuthorizationRepo) list(match func(entities.WorkAuthorization) bool) ([]entities.WorkAuthorization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.WorkAuthorization
	for _, w := range r.s.authorizations {
		if match(w) {
			out = append(out, clone(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
