// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a transport surface the application serves on.
type Delivery interface {
	// Serve blocks until the surface stops accepting requests.
	Serve(ctx context.Context) error
}
