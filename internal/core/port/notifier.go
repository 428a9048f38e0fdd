package port

import (
	"context"

	"fundraise/internal/core/domain"
)

// Notifier is the outbound port for the observer feed. Notify is invoked
// after a mutation has committed; delivery is best-effort and can never
// abort the operation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
