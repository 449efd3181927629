package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// ITransitionNotifier delivers state-transition events to the notification
// dispatcher. Delivery is fire-and-forget: implementations log failures and
// never propagate them, so a lost notification cannot roll back a
// transition.
type ITransitionNotifier interface {
	NotifyTransition(ctx context.Context, ev entities.TransitionEvent)
}
