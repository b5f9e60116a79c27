package handler

import "errors"

// errNoTransport is returned by NewHandlers when config.Server names neither
// an HTTP nor a gRPC address, so the contract host would serve nothing.
var errNoTransport = errors.New("no transport configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
