package application

import (
	"strings"

	"github.com/bnema/cubesign/internal/domain"
)

const notificationTitle = "ClassCube check-in"

// summarize turns an attempt's aggregate result into the single
// notification event every attempt produces. The two special aggregate
// cases get distinct wording so they are never mistaken for plain
// success or failure.
func summarize(result domain.AggregateResult) domain.Notification {
	switch {
	case result.AllAlreadySigned():
		return domain.Notification{
			Title:    notificationTitle,
			Body:     "Every session is already signed in for today.",
			Severity: domain.SeveritySuccess,
		}

	case result.AllNoTask():
		return domain.Notification{
			Title:    notificationTitle,
			Body:     "No pending check-in tasks were found.",
			Severity: domain.SeverityInfo,
		}
	}

	var lines []string
	appendLine := func(label string, names []string) {
		if len(names) > 0 {
			lines = append(lines, label+": "+strings.Join(names, ", "))
		}
	}

	appendLine("succeeded", result.NamesByKind(domain.OutcomeSuccess))
	appendLine("already signed", result.NamesByKind(domain.OutcomeAlreadySigned))
	appendLine("no task", result.NamesByKind(domain.OutcomeNoTaskFound))
	appendLine("failed", result.NamesByKind(domain.OutcomeFailure))

	if len(result.InvalidSessions) > 0 {
		names := make([]string, 0, len(result.InvalidSessions))
		for _, session := range result.InvalidSessions {
			names = append(names, session.DisplayName)
		}
		appendLine("invalid sessions", names)
	}

	severity := domain.SeverityError
	if result.OverallSuccess {
		severity = domain.SeveritySuccess
		if len(result.InvalidSessions) > 0 || len(result.NamesByKind(domain.OutcomeFailure)) > 0 {
			severity = domain.SeverityWarning
		}
	}

	return domain.Notification{
		Title:    notificationTitle,
		Body:     strings.Join(lines, "\n"),
		Severity: severity,
	}
}
