package server

import "context"

// Server defines the common lifecycle contract for listeners managed by this
// package.
type Server interface {
	// Run starts serving and blocks until ctx is done, a termination signal
	// arrives or a listener fails. Listeners are then shut down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every listener.
	Shutdown(ctx context.Context) error
}
