package rpcapi

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nsheremet/zkpauth/internal/auth"
	"github.com/nsheremet/zkpauth/internal/authz"
)

// Facade adapts an *auth.Service to the wire messages of wire.go and is the
// service implementation registered against serviceDesc in service.go (whose
// HandlerType is any, so the handlers assert *Facade themselves).
type Facade struct {
	svc    *auth.Service
	logger *slog.Logger
}

// NewFacade wraps svc as a gRPC-reachable service. A nil logger falls back
// to slog.Default().
func NewFacade(svc *auth.Service, logger *slog.Logger) *Facade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Facade{svc: svc, logger: logger}
}

// GetAuthenticationParameters returns the engine's group parameters.
func (f *Facade) GetAuthenticationParameters(ctx context.Context, _ *Empty) (*ParametersResponse, error) {
	params := f.svc.GetParameters()
	f.logger.Debug("rpc call", "method", "GetAuthenticationParameters", "ok", true)
	return &ParametersResponse{
		P:       params.P.Bytes(),
		Q:       params.Q.Bytes(),
		G:       params.G.Bytes(),
		H:       params.H.Bytes(),
		BitSize: uint32(params.BitSize),
	}, nil
}

// Register registers a new user's public commitments.
func (f *Facade) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	y1, y2 := bytesToBigInt(req.Y1), bytesToBigInt(req.Y2)
	err := f.svc.Register(req.User, y1, y2)
	f.logger.Debug("rpc call", "method", "Register", "user", req.User, "ok", err == nil)
	if err != nil {
		return nil, toStatus(err)
	}
	return &RegisterResponse{}, nil
}

// CreateAuthenticationChallenge issues a fresh challenge for req.User.
func (f *Facade) CreateAuthenticationChallenge(ctx context.Context, req *ChallengeRequest) (*ChallengeResponse, error) {
	r1, r2 := bytesToBigInt(req.R1), bytesToBigInt(req.R2)
	challenge, err := f.svc.IssueChallenge(req.User, r1, r2)
	f.logger.Debug("rpc call", "method", "CreateAuthenticationChallenge", "user", req.User, "ok", err == nil)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ChallengeResponse{AuthID: challenge.AuthID, C: challenge.C.Bytes()}, nil
}

// VerifyAuthentication answers an outstanding challenge and, on success,
// returns a fresh session id.
func (f *Facade) VerifyAuthentication(ctx context.Context, req *AnswerRequest) (*AnswerResponse, error) {
	s := bytesToBigInt(req.S)
	sessionID, err := f.svc.SolveChallenge(req.AuthID, s)
	f.logger.Debug("rpc call", "method", "VerifyAuthentication", "auth_id", req.AuthID, "ok", err == nil)
	if err != nil {
		return nil, toStatus(err)
	}
	return &AnswerResponse{SessionID: sessionID}, nil
}

// toStatus maps an internal/authz error to a gRPC status: InvalidArgument,
// AlreadyExists, and Unauthenticated map to the identically named gRPC
// codes; NotFound maps to codes.NotFound though the core never produces it;
// UnsupportedBitSize maps to codes.FailedPrecondition; anything else (a bug,
// or a plain non-authz error) maps to codes.Internal rather than leaking its
// message.
func toStatus(err error) error {
	e, ok := err.(*authz.Error)
	if !ok {
		return status.Error(codes.Internal, "internal error")
	}
	switch e.Kind {
	case authz.InvalidArgument:
		return status.Error(codes.InvalidArgument, e.Error())
	case authz.AlreadyExists:
		return status.Error(codes.AlreadyExists, e.Error())
	case authz.Unauthenticated:
		return status.Error(codes.Unauthenticated, e.Error())
	case authz.NotFound:
		return status.Error(codes.NotFound, e.Error())
	case authz.UnsupportedBitSize:
		return status.Error(codes.FailedPrecondition, e.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
