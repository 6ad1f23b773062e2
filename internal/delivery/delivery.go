// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving process (HTTP API, push worker).
// Serve blocks until the server stops or fails; shutdown is driven by the
// lifecycle hooks registered at construction.
type Delivery interface {
	Serve(ctx context.Context) error
}
