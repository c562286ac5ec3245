// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a server that accepts work until its context or lifecycle
// stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
