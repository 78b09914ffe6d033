package rpcapi

import (
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"github.com/nsheremet/zkpauth/internal/auth"
)

// NewServer builds a *grpc.Server with svc registered against serviceDesc. A
// unary interceptor recovers a panic from a handler, logs it at Error, and
// re-panics so the failure is still visible to whatever supervises the
// process. A nil logger falls back to slog.Default().
func NewServer(svc *auth.Service, logger *slog.Logger) *grpc.Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := grpc.NewServer(grpc.UnaryInterceptor(recoveryInterceptor(logger)))
	s.RegisterService(&serviceDesc, NewFacade(svc, logger))
	return s
}

// Serve binds addr and blocks serving s until it stops or listening fails.
func Serve(s *grpc.Server, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}
