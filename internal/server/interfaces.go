package server

import "context"

// Server defines the lifecycle of the transports managed by this package.
type Server interface {
	// Run binds every listener, serves until ctx is done and shuts down.
	Run(ctx context.Context) error

	// RunServer is Run with a context cancelled by SIGTERM, SIGINT or
	// SIGQUIT.
	RunServer()

	// Shutdown gracefully stops every started transport.
	Shutdown()
}
