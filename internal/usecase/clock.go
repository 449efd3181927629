package usecase

import (
	"time"

	"mecanica_workflow/internal/usecase/interfaces"
)

// SystemClock is the production Clock. Tests inject a fixed clock instead.
type SystemClock struct{}

var _ interfaces.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
