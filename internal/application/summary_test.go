package application

import (
	"testing"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeAllAlreadySigned(t *testing.T) {
	notification := summarize(uniformResult(domain.OutcomeAlreadySigned))

	assert.Equal(t, domain.SeveritySuccess, notification.Severity)
	assert.Contains(t, notification.Body, "already signed in for today")
}

func TestSummarizeAllNoTask(t *testing.T) {
	notification := summarize(uniformResult(domain.OutcomeNoTaskFound))

	assert.Equal(t, domain.SeverityInfo, notification.Severity)
	assert.Contains(t, notification.Body, "No pending check-in tasks")
}

func TestSummarizeMixedOutcomes(t *testing.T) {
	result := domain.AggregateResult{
		OverallSuccess: true,
		Outcomes: []domain.SessionOutcome{
			{Session: domain.Session{DisplayName: "alice"}, Outcome: domain.CheckInOutcome{Kind: domain.OutcomeSuccess}},
			{Session: domain.Session{DisplayName: "bob"}, Outcome: domain.CheckInOutcome{Kind: domain.OutcomeFailure}},
			{Session: domain.Session{DisplayName: "carol"}, Outcome: domain.CheckInOutcome{Kind: domain.OutcomeSessionInvalid}},
		},
		InvalidSessions: []domain.Session{{DisplayName: "carol"}},
	}

	notification := summarize(result)

	assert.Equal(t, domain.SeverityWarning, notification.Severity)
	assert.Contains(t, notification.Body, "succeeded: alice")
	assert.Contains(t, notification.Body, "failed: bob")
	assert.Contains(t, notification.Body, "invalid sessions: carol")
}

func TestSummarizeAllFailed(t *testing.T) {
	notification := summarize(failureResult())

	assert.Equal(t, domain.SeverityError, notification.Severity)
	assert.Contains(t, notification.Body, "failed: alice")
}
