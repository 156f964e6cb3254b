package usecase

import (
	"context"
	"time"
)

// RehydrationReport summarizes a startup replay of the event log.
type RehydrationReport struct {
	TopicRef     string
	TopicCreated bool
	Received     int
	Applied      int
	Duplicates   int
	Malformed    int
	Rejected     int
	CaughtUp     bool // the log head was reached before the replay window elapsed
	Duration     time.Duration
}

// RehydrationUsecase rebuilds the domain store from the event log.
type RehydrationUsecase interface {
	Rehydrate(ctx context.Context) (*RehydrationReport, error)
}
