package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/service"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ServiceName is the name under which the triage API reports its health,
// next to the server-wide "" entry.
const ServiceName = "bugtriage.BugTriage"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. Serving status follows
// database reachability as reported by [service.AppInfoService.PingDatabase].
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health is the status registry served over grpc.health.v1.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Both health entries start as NOT_SERVING until the first database
// check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckDatabase pings the database once and publishes the resulting status.
func (h *Handler) CheckDatabase(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	servingStatus := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.PingDatabase(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("gRPC health: database is unreachable")
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(servingStatus)
	return servingStatus
}

// WatchDatabase calls CheckDatabase immediately and then every interval
// until ctx is done.
func (h *Handler) WatchDatabase(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.CheckDatabase(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown switches every entry to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging is a unary interceptor that attaches a request-scoped logger
// carrying the trace id and writes one access log line per call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var incoming string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			incoming = values[0]
		}
	}
	traceID := utils.TraceID(incoming)

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) setStatus(servingStatus healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", servingStatus)
	h.health.SetServingStatus(ServiceName, servingStatus)
}
