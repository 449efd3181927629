package usecase

import (
	"errors"

	"mecanica_workflow/internal/usecase/interfaces"
)

var (
	// ErrUnauthorizedActor is returned when the caller's role or identity
	// does not permit the requested operation.
	ErrUnauthorizedActor = errors.New("actor is not allowed to perform this action")

	// ErrConflict surfaces after the bounded conditional-write retry budget
	// is exhausted; the caller should refresh and try again.
	ErrConflict = interfaces.ErrConflict
)

// maxConflictRetries bounds the transparent read-validate-write retry cycle
// before a Conflict is surfaced to the caller.
const maxConflictRetries = 3
