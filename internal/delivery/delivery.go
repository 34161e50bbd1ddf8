// Package delivery defines the contract every transport entrypoint satisfies,
// so the application can start them uniformly.
package delivery

import "context"

// Delivery is a server that accepts requests until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
