// Package grpc exposes the standard gRPC health checking service for the
// blog server so orchestrators can probe it without speaking HTTP.
package grpc

import (
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported alongside the overall ("") status.
const ServiceName = "blog.Keeper"

// Handler owns the health server registered on the gRPC transport.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

// NewHandler returns a Handler whose statuses start as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Health returns the underlying health server.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

// Shutdown flips every status to NOT_SERVING. Watchers are notified and
// later updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("health status set to NOT_SERVING")
	h.health.Shutdown()
}
