package interceptors

import (
	"context"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var grpcPanicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "grpc_panics_recovered_total",
		Help: "Handler panics converted to Internal errors",
	},
	[]string{"service", "method"},
)

// RecoveryInterceptor must be first in the chain so it also covers the
// other interceptors.
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				service, method := splitMethodName(info.FullMethod)
				grpcPanicsTotal.WithLabelValues(service, method).Inc()

				logger.Error("panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.String("stack", string(debug.Stack())),
				)
				err = status.Error(codes.Internal, "internal server error")
			}
		}()

		return handler(ctx, req)
	}
}
