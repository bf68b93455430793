package notification

import "context"

//go:generate mockgen -source=sink.go -destination=mock/sink_mock.go -package=mock

// Sink delivers a message to an address. Callers treat delivery as
// best-effort: a failed Send must never undo the state change that
// triggered it.
type Sink interface {
	Send(ctx context.Context, subject, body, to string) error
}
