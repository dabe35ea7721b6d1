// Package delivery defines the contract shared by the application's serving
// surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface (an HTTP listener here).
// Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
