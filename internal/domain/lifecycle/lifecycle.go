// Package lifecycle holds shared timing constants for component start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second

// DefaultReplayWindow bounds how long startup waits for the event log to replay history.
const DefaultReplayWindow = 5 * time.Second
