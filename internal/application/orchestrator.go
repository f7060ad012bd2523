package application

import (
	"context"
	"log/slog"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/bnema/cubesign/internal/ports"
)

// CheckInRunner runs one full check-in attempt across a set of sessions.
// The schedule engine depends on this instead of the concrete orchestrator.
type CheckInRunner interface {
	RunCheckIn(ctx context.Context, sessions []domain.Session, target domain.CheckInTarget) domain.AggregateResult
}

// Orchestrator runs the check-in flow session by session, strictly
// sequentially. Parallel submissions would make the remote side's rate
// behavior unpredictable and request logs unattributable.
type Orchestrator struct {
	client ports.CheckInClient
	logger *slog.Logger
}

var _ CheckInRunner = (*Orchestrator)(nil)

func NewOrchestrator(client ports.CheckInClient, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{client: client, logger: logger}
}

// RunCheckIn processes every session in configured order. One session's
// failure or invalid credential never aborts the remaining sessions.
func (o *Orchestrator) RunCheckIn(ctx context.Context, sessions []domain.Session, target domain.CheckInTarget) domain.AggregateResult {
	result := domain.AggregateResult{}

	for _, session := range sessions {
		outcome, invalid := o.runSession(ctx, session, target)
		if invalid {
			result.InvalidSessions = append(result.InvalidSessions, session)
		}

		result.Outcomes = append(result.Outcomes, domain.SessionOutcome{Session: session, Outcome: outcome})
		if outcome.Kind == domain.OutcomeSuccess {
			result.OverallSuccess = true
		}
	}

	return result
}

func (o *Orchestrator) runSession(ctx context.Context, session domain.Session, target domain.CheckInTarget) (domain.CheckInOutcome, bool) {
	log := o.logger.With("session", session.DisplayName, "class", target.ClassID)

	check := o.client.VerifySession(ctx, session)
	switch check.Status {
	case domain.VerifyInvalid:
		log.Warn("session credential no longer valid")
		return domain.CheckInOutcome{Kind: domain.OutcomeSessionInvalid, Message: check.Detail}, true
	case domain.VerifyTransportError:
		log.Warn("session verification unreachable", "detail", check.Detail)
		return domain.CheckInOutcome{Kind: domain.OutcomeFailure, Message: check.Detail}, false
	}

	listing := o.client.ListPendingTasks(ctx, session, target.ClassID)
	switch listing.Status {
	case domain.ListEmpty:
		log.Info("no pending check-in task")
		return domain.CheckInOutcome{Kind: domain.OutcomeNoTaskFound}, false
	case domain.ListSessionInvalid:
		log.Warn("session rejected while listing tasks")
		return domain.CheckInOutcome{Kind: domain.OutcomeSessionInvalid, Message: listing.Detail}, true
	case domain.ListTransportError:
		log.Warn("task listing failed", "detail", listing.Detail)
		return domain.CheckInOutcome{Kind: domain.OutcomeFailure, Message: listing.Detail}, false
	}

	log.Info("pending check-in tasks found", "count", len(listing.TaskIDs))

	// Tasks are submitted one by one; the session's outcome is the outcome
	// of its last processed task.
	var outcome domain.CheckInOutcome
	for _, taskID := range listing.TaskIDs {
		longitude := domain.Jitter(target.Longitude)
		latitude := domain.Jitter(target.Latitude)

		submitted := o.client.SubmitCheckIn(ctx, session, target, taskID, longitude, latitude)
		outcome = outcomeFromSubmit(submitted)
		log.Info("check-in submitted",
			"task", taskID,
			"status", string(submitted.Status),
			"message", submitted.Message,
		)
	}

	return outcome, false
}

func outcomeFromSubmit(result domain.SubmitResult) domain.CheckInOutcome {
	switch result.Status {
	case domain.SubmitSuccess, domain.SubmitUnconfirmed:
		// Unconfirmed means the site accepted the request but returned no
		// recognizable marker; the original tool counts that as success.
		return domain.CheckInOutcome{Kind: domain.OutcomeSuccess, Message: result.Message}
	case domain.SubmitAlreadySigned:
		return domain.CheckInOutcome{Kind: domain.OutcomeAlreadySigned, Message: result.Message}
	default:
		return domain.CheckInOutcome{Kind: domain.OutcomeFailure, Message: result.Message}
	}
}
