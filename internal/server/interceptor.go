package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/SmritaPandey/OCR-admission-forms/internal/common"
)

// RequestIDInterceptor stamps every RPC with a request id and logs the
// method, outcome and latency.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = common.WithRequestID(ctx, uuid.NewString())
		start := time.Now()

		resp, err := handler(ctx, req)

		code := status.Code(err)
		logger.Info("rpc",
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"code", code.String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
