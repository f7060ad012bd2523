package ports

import "context"

// PushGateway sends a push notification through an external relay. Called
// only when a token is configured; the schedule engine never blocks a state
// transition on its result.
type PushGateway interface {
	SendPush(ctx context.Context, token, title, content string) error
}
