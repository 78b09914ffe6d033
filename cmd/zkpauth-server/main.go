// Command zkpauth-server boots the authentication service: build the crypto
// engine, the in-memory store, the auth state machine, then serve the gRPC
// facade until interrupted.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsheremet/zkpauth/internal/auth"
	"github.com/nsheremet/zkpauth/internal/config"
	"github.com/nsheremet/zkpauth/internal/engine"
	"github.com/nsheremet/zkpauth/internal/rpcapi"
	"github.com/nsheremet/zkpauth/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("zkpauth-server exiting", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	params, err := engine.GenerateParameters(cfg.BitSize, cfg.FixedParameters)
	if err != nil {
		return err
	}
	params.ConstantTimeVerify = cfg.ConstantTimeVerify

	logger := slog.Default()

	e := engine.New(params)
	st := store.New(logger)
	svc := auth.New(e, st, auth.WithConsumeChallengeOnFailure(cfg.ConsumeOnFailure))

	server := rpcapi.NewServer(svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("zkpauth-server listening", "addr", cfg.Addr(), "bit_size", cfg.BitSize, "fixed_parameters", cfg.FixedParameters)
		errCh <- rpcapi.Serve(server, cfg.Addr())
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
