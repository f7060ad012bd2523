package domain

import "errors"

var (
	ErrNoSessions       = errors.New("no sessions configured")
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrAttemptInFlight  = errors.New("a check-in attempt is already running")
)
