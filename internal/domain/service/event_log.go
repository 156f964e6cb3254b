package service

import (
	"context"

	"agritoken/internal/domain/entity"
)

// Record is one raw message replayed from the event log.
type Record struct {
	Payload  []byte
	Position int64 // Zero-based log position, -1 when the log does not expose positions.
}

// Subscription is a live replay stream. Stop is idempotent.
type Subscription interface {
	Stop()
}

// EventLog is the ordered, append-only topic that mirrors every domain event.
type EventLog interface {
	// EnsureTopic resolves the configured topic or creates a new one.
	// created reports whether a new topic was made during this call.
	EnsureTopic(ctx context.Context) (ref string, created bool, err error)

	// TopicRef returns the resolved topic reference, empty before EnsureTopic.
	TopicRef() string

	// Append publishes ev and waits until the log has accepted it.
	Append(ctx context.Context, ev *entity.Event) error

	// Subscribe replays the log from its beginning in order, invoking onRecord for
	// every message until the subscription is stopped. Stream failures go to onError.
	Subscribe(ctx context.Context, onRecord func(Record), onError func(error)) (Subscription, error)

	// Close releases any resources held by the log client
	Close() error
}

// PositionedLog is implemented by logs whose records carry positions, so replay
// can stop as soon as it has caught up.
type PositionedLog interface {
	EventLog

	// Head returns the position one past the last record currently in the log;
	// zero for an empty log.
	Head(ctx context.Context) (int64, error)
}
