package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
)

// UnaryRequestInterceptor tags every request with a request id and logs the
// call outcome with its latency.
func UnaryRequestInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.New().String()
		ctx = common.WithRequestID(ctx, reqID)
		start := time.Now()

		resp, err := handler(ctx, req)

		if err != nil {
			logger.Warn("rpc.failed",
				"req_id", reqID,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"err", err,
			)
		} else {
			logger.Info("rpc.ok",
				"req_id", reqID,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return resp, err
	}
}
