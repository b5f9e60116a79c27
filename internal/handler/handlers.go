// Package handler groups the transport handlers of the contract host.
package handler

import (
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/handler/grpc"
	"github.com/MKhiriev/go-farm-twin/internal/handler/http"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
)

// Handlers holds one handler per configured transport. A transport without
// an address in config.Server stays nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().
		Str("http_address", cfg.HTTPAddress).
		Str("grpc_address", cfg.GRPCAddress).
		Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransport
	}

	return handlers, nil
}
