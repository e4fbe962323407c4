// Package delivery defines the contract of the transports started by cmd binaries.
package delivery

import "context"

// Delivery is a long running transport (HTTP server, worker endpoint...).
type Delivery interface {
	Serve(ctx context.Context) error
}
