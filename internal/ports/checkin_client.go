package ports

import (
	"context"

	"github.com/bnema/cubesign/internal/domain"
)

// CheckInClient talks to the remote classroom site. The site is an unstable
// scraping target, so every method classifies its raw response into a typed
// status instead of returning transport failures as errors.
type CheckInClient interface {
	VerifySession(ctx context.Context, session domain.Session) domain.SessionCheck
	FetchProfile(ctx context.Context, session domain.Session) (domain.Profile, domain.SessionCheck)
	ListPendingTasks(ctx context.Context, session domain.Session, classID string) domain.TaskListing
	SubmitCheckIn(ctx context.Context, session domain.Session, target domain.CheckInTarget, taskID string, longitude, latitude float64) domain.SubmitResult
}
