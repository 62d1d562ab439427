package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

var checkInfo = &grpc.UnaryServerInfo{FullMethod: healthpb.Health_Check_FullMethodName}

func TestLoggerUnaryInterceptor_ReturnsHandlerResponse(t *testing.T) {
	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
	}

	resp, err := LoggerUnaryInterceptor(context.Background(), &healthpb.HealthCheckRequest{Service: "notes"}, checkInfo, handler)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.(*healthpb.HealthCheckResponse).GetStatus())
}

func TestLoggerUnaryInterceptor_ReturnsHandlerError(t *testing.T) {
	wantErr := status.Error(codes.NotFound, "unknown service")
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	}

	_, err := LoggerUnaryInterceptor(context.Background(), &healthpb.HealthCheckRequest{}, checkInfo, handler)

	assert.True(t, errors.Is(err, wantErr))
	assert.Equal(t, codes.NotFound, status.Code(err))
}
