// Package delivery holds the inbound adapters: the public API and the dispatcher worker.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
