// Package grpc is the gRPC transport of the contract host. It serves the
// standard grpc.health.v1.Health service so that orchestrators can check the
// host, and provides the logging interceptor of the gRPC server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ContractServiceName is the service name reported by the health server in
// addition to the overall ("") status.
const ContractServiceName = "farmtwin.Contract"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Health statuses start as NOT_SERVING
// until [Handler.Register] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ContractServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register adds the health service to s and marks the host as serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ContractServiceName, healthpb.HealthCheckResponse_SERVING)

	if h.services != nil && h.services.AppInfoService != nil {
		h.logger.Info().
			Str("version", h.services.AppInfoService.GetAppVersion(context.Background())).
			Msg("gRPC health service registered")
	}
}

// Shutdown flips every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs every unary call with its method, status code and
// duration.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(h.logger.WithContext(ctx), req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
