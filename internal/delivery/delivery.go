// Package delivery holds the inbound adapters that expose the platform.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the adapter
// stops; shutdown is driven by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
