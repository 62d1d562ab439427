package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggerUnaryInterceptor логирует метод, код статуса и время выполнения запроса
func LoggerUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		st := status.Convert(err)
		slog.WarnContext(ctx, "grpc request failed",
			"method", info.FullMethod, "code", st.Code().String(), "message", st.Message(), "duration", duration)
	} else {
		slog.DebugContext(ctx, "grpc request completed",
			"method", info.FullMethod, "duration", duration)
	}

	return resp, err
}
