package ports

import (
	"context"

	"github.com/bnema/cubesign/internal/domain"
)

// Notifier delivers outcome summaries to the user. Implementations are
// fire-and-forget; delivery failures are logged, never propagated.
type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification)
}
