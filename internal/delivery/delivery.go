// Package delivery defines the contract implemented by every inbound
// transport the service exposes.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today). Serve blocks
// until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
