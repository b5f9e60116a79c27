// Package server runs the transports of the contract host.
//
// It binds the HTTP and gRPC listeners up front, serves until the context
// passed to Run is cancelled (or a termination signal arrives for
// RunServer) and then shuts every started transport down gracefully.
package server
