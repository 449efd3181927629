// Package memory implements the workflow repositories over process-local
// maps. It honors the same conditional-write contract as the DynamoDB
// adapters, which makes it the reference store for tests and for running
// the service without AWS (WORKFLOW_STORAGE=memory).
package memory

import (
	"encoding/json"
	"sync"

	"mecanica_workflow/internal/domain/entities"
)

// Store holds all three entity tables behind one mutex. The mutex stands in
// for DynamoDB's per-item conditional write: the status check and the write
// are atomic with respect to each other, exactly like the real store.
type Store struct {
	mu             sync.Mutex
	estimates      map[string]entities.CostEstimate
	requests       map[string]entities.MechanicRequest
	authorizations map[string]entities.WorkAuthorization
}

func NewStore() *Store {
	return &Store{
		estimates:      make(map[string]entities.CostEstimate),
		requests:       make(map[string]entities.MechanicRequest),
		authorizations: make(map[string]entities.WorkAuthorization),
	}
}

// Estimates returns the store's ICostEstimateRepository view.
func (s *Store) Estimates() *EstimateRepo {
	return &EstimateRepo{s: s}
}

// Requests returns the store's IMechanicRequestRepository view.
func (s *Store) Requests() *RequestRepo {
	return &RequestRepo{s: s}
}

// Authorizations returns the store's IWorkAuthorizationRepository view.
func (s *Store) Authorizations() *AuthorizationRepo {
	return &AuthorizationRepo{s: s}
}

// clone deep-copies an entity through JSON so callers can never alias the
// stored value's slices or pointers.
func clone[T any](v T) T {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}
	return out
}
