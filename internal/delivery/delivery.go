// Package delivery defines the servers started by the binaries.
package delivery

import "context"

// Delivery is a long-running entrypoint such as an HTTP server.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
