package domain

type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeFailure        OutcomeKind = "failure"
	OutcomeNoTaskFound    OutcomeKind = "no_task_found"
	OutcomeAlreadySigned  OutcomeKind = "already_signed"
	OutcomeSessionInvalid OutcomeKind = "session_invalid"
)

// CheckInOutcome is the result of one session's attempt. Exactly one kind
// applies per attempt.
type CheckInOutcome struct {
	Kind    OutcomeKind
	Message string
}

type SessionOutcome struct {
	Session Session
	Outcome CheckInOutcome
}

// AggregateResult is the outcome of one full attempt across all configured
// sessions. It is built fresh per attempt and never persisted.
type AggregateResult struct {
	// OverallSuccess is true iff at least one session's outcome is Success.
	OverallSuccess bool
	// Outcomes preserves the configured session order.
	Outcomes        []SessionOutcome
	InvalidSessions []Session
}

// AllNoTask reports whether every session found no pending check-in task.
// This is "no work existed", distinct from both success and failure.
func (r AggregateResult) AllNoTask() bool {
	return r.allOf(OutcomeNoTaskFound)
}

// AllAlreadySigned reports whether every session's submission came back as
// already signed. This is the authoritative "done for today" signal.
func (r AggregateResult) AllAlreadySigned() bool {
	return r.allOf(OutcomeAlreadySigned)
}

func (r AggregateResult) allOf(kind OutcomeKind) bool {
	if len(r.Outcomes) == 0 {
		return false
	}

	for _, entry := range r.Outcomes {
		if entry.Outcome.Kind != kind {
			return false
		}
	}

	return true
}

// NamesByKind returns the display names of sessions whose outcome has the
// given kind, in configured order.
func (r AggregateResult) NamesByKind(kind OutcomeKind) []string {
	var names []string
	for _, entry := range r.Outcomes {
		if entry.Outcome.Kind == kind {
			names = append(names, entry.Session.DisplayName)
		}
	}

	return names
}
