package application

import (
	"context"
	"testing"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/bnema/cubesign/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTarget = domain.CheckInTarget{
	ClassID:   "10421",
	Longitude: 116.397128,
	Latitude:  39.916527,
	Accuracy:  "10",
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func TestRunCheckInInvalidSessionDoesNotBlockOthers(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	alice := domain.Session{DisplayName: "alice", Cookie: "cookie-a"}
	bob := domain.Session{DisplayName: "bob", Cookie: "cookie-b"}

	client.EXPECT().VerifySession(mockAnyContext(), alice).
		Return(domain.SessionCheck{Status: domain.VerifyInvalid, Detail: "cookie expired"})
	client.EXPECT().VerifySession(mockAnyContext(), bob).
		Return(domain.SessionCheck{Status: domain.VerifyValid})
	client.EXPECT().ListPendingTasks(mockAnyContext(), bob, "10421").
		Return(domain.TaskListing{Status: domain.ListFound, TaskIDs: []string{"3045"}})
	client.EXPECT().SubmitCheckIn(mockAnyContext(), bob, testTarget, "3045", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ domain.Session, _ domain.CheckInTarget, _ string, longitude, latitude float64) {
			assert.InDelta(t, testTarget.Longitude, longitude, 0.00015001)
			assert.InDelta(t, testTarget.Latitude, latitude, 0.00015001)
		}).
		Return(domain.SubmitResult{Status: domain.SubmitSuccess, Message: "signed in"})

	result := orchestrator.RunCheckIn(context.Background(), []domain.Session{alice, bob}, testTarget)

	require.True(t, result.OverallSuccess)
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, domain.OutcomeSessionInvalid, result.Outcomes[0].Outcome.Kind)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcomes[1].Outcome.Kind)
	require.Len(t, result.InvalidSessions, 1)
	assert.Equal(t, "alice", result.InvalidSessions[0].DisplayName)
}

func TestRunCheckInAllSessionsFindNoTask(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	sessions := []domain.Session{
		{DisplayName: "alice", Cookie: "cookie-a"},
		{DisplayName: "bob", Cookie: "cookie-b"},
	}

	for _, session := range sessions {
		client.EXPECT().VerifySession(mockAnyContext(), session).
			Return(domain.SessionCheck{Status: domain.VerifyValid})
		client.EXPECT().ListPendingTasks(mockAnyContext(), session, "10421").
			Return(domain.TaskListing{Status: domain.ListEmpty})
	}

	result := orchestrator.RunCheckIn(context.Background(), sessions, testTarget)

	assert.False(t, result.OverallSuccess)
	assert.True(t, result.AllNoTask())
	assert.Empty(t, result.InvalidSessions)
}

func TestRunCheckInVerifyTransportErrorIsFailureNotInvalid(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	session := domain.Session{DisplayName: "alice", Cookie: "cookie-a"}
	client.EXPECT().VerifySession(mockAnyContext(), session).
		Return(domain.SessionCheck{Status: domain.VerifyTransportError, Detail: "connection refused"})

	result := orchestrator.RunCheckIn(context.Background(), []domain.Session{session}, testTarget)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, domain.OutcomeFailure, result.Outcomes[0].Outcome.Kind)
	assert.Empty(t, result.InvalidSessions)
}

func TestRunCheckInSessionRejectedDuringListing(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	session := domain.Session{DisplayName: "alice", Cookie: "cookie-a"}
	client.EXPECT().VerifySession(mockAnyContext(), session).
		Return(domain.SessionCheck{Status: domain.VerifyValid})
	client.EXPECT().ListPendingTasks(mockAnyContext(), session, "10421").
		Return(domain.TaskListing{Status: domain.ListSessionInvalid, Detail: "login page returned"})

	result := orchestrator.RunCheckIn(context.Background(), []domain.Session{session}, testTarget)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, domain.OutcomeSessionInvalid, result.Outcomes[0].Outcome.Kind)
	require.Len(t, result.InvalidSessions, 1)
}

func TestRunCheckInLastTaskOutcomeWins(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	session := domain.Session{DisplayName: "alice", Cookie: "cookie-a"}
	client.EXPECT().VerifySession(mockAnyContext(), session).
		Return(domain.SessionCheck{Status: domain.VerifyValid})
	client.EXPECT().ListPendingTasks(mockAnyContext(), session, "10421").
		Return(domain.TaskListing{Status: domain.ListFound, TaskIDs: []string{"1", "2"}})
	client.EXPECT().SubmitCheckIn(mockAnyContext(), session, testTarget, "1", mock.Anything, mock.Anything).
		Return(domain.SubmitResult{Status: domain.SubmitSuccess})
	client.EXPECT().SubmitCheckIn(mockAnyContext(), session, testTarget, "2", mock.Anything, mock.Anything).
		Return(domain.SubmitResult{Status: domain.SubmitAlreadySigned, Message: "already signed in"})

	result := orchestrator.RunCheckIn(context.Background(), []domain.Session{session}, testTarget)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, domain.OutcomeAlreadySigned, result.Outcomes[0].Outcome.Kind)
	assert.False(t, result.OverallSuccess)
}

func TestRunCheckInUnconfirmedSubmissionCountsAsSuccess(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	session := domain.Session{DisplayName: "alice", Cookie: "cookie-a"}
	client.EXPECT().VerifySession(mockAnyContext(), session).
		Return(domain.SessionCheck{Status: domain.VerifyValid})
	client.EXPECT().ListPendingTasks(mockAnyContext(), session, "10421").
		Return(domain.TaskListing{Status: domain.ListFound, TaskIDs: []string{"7"}})
	client.EXPECT().SubmitCheckIn(mockAnyContext(), session, testTarget, "7", mock.Anything, mock.Anything).
		Return(domain.SubmitResult{Status: domain.SubmitUnconfirmed, Message: "no result marker"})

	result := orchestrator.RunCheckIn(context.Background(), []domain.Session{session}, testTarget)

	assert.True(t, result.OverallSuccess)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcomes[0].Outcome.Kind)
}

func TestRunCheckInSubmitTransportErrorIsFailure(t *testing.T) {
	client := mocks.NewMockCheckInClient(t)
	orchestrator := NewOrchestrator(client, nil)

	session := domain.Session{DisplayName: "alice", Cookie: "cookie-a"}
	client.EXPECT().VerifySession(mockAnyContext(), session).
		Return(domain.SessionCheck{Status: domain.VerifyValid})
	client.EXPECT().ListPendingTasks(mockAnyContext(), session, "10421").
		Return(domain.TaskListing{Status: domain.ListFound, TaskIDs: []string{"7"}})
	client.EXPECT().SubmitCheckIn(mockAnyContext(), session, testTarget, "7", mock.Anything, mock.Anything).
		Return(domain.SubmitResult{Status: domain.SubmitTransportError, Message: "timeout"})

	result := orchestrator.RunCheckIn(context.Background(), []domain.Session{session}, testTarget)

	assert.False(t, result.OverallSuccess)
	assert.Equal(t, domain.OutcomeFailure, result.Outcomes[0].Outcome.Kind)
}
