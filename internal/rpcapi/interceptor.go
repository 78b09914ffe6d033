package rpcapi

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
)

// recoveryInterceptor logs a panic raised by a handler at Error, including
// the full method name, before re-panicking. It does not convert the panic
// into a gRPC status: the process is expected to crash and be restarted, but
// the crash reason is logged first.
func recoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in rpc handler", "method", info.FullMethod, "panic", r)
				panic(r)
			}
		}()
		return handler(ctx, req)
	}
}
