// Package console emits notifications through the structured logger, which
// is the delivery channel a foreground or service-managed process actually
// has.
package console

import (
	"context"
	"log/slog"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/bnema/cubesign/internal/ports"
)

type Notifier struct {
	logger *slog.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, notification domain.Notification) {
	log := n.logger.With("title", notification.Title)

	switch notification.Severity {
	case domain.SeverityError:
		log.ErrorContext(ctx, notification.Body)
	case domain.SeverityWarning:
		log.WarnContext(ctx, notification.Body)
	default:
		log.InfoContext(ctx, notification.Body)
	}
}
