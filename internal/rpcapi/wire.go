// Package rpcapi is the service facade: it translates the four wire
// messages below to and from internal/auth, and maps internal/authz error
// kinds to gRPC status codes. Big integers travel as magnitude-only
// big-endian byte strings, exactly math/big.Int.Bytes()/SetBytes() with no
// leading sign octet.
//
// The transport itself is google.golang.org/grpc, wired through a
// hand-maintained grpc.ServiceDesc and a JSON encoding.Codec rather than
// protoc-generated stubs; see service.go and codec.go.
package rpcapi

import "math/big"

// Empty is the request type for GetAuthenticationParameters, which takes no
// arguments.
type Empty struct{}

// ParametersResponse carries the group's public parameters.
type ParametersResponse struct {
	P       []byte `json:"p"`
	Q       []byte `json:"q"`
	G       []byte `json:"g"`
	H       []byte `json:"h"`
	BitSize uint32 `json:"bit_size"`
}

// RegisterRequest is a user-registration request.
type RegisterRequest struct {
	User string `json:"user"`
	Y1   []byte `json:"y1"`
	Y2   []byte `json:"y2"`
}

// RegisterResponse is empty on success.
type RegisterResponse struct{}

// ChallengeRequest requests a fresh authentication challenge.
type ChallengeRequest struct {
	User string `json:"user"`
	R1   []byte `json:"r1"`
	R2   []byte `json:"r2"`
}

// ChallengeResponse carries the issued challenge.
type ChallengeResponse struct {
	AuthID string `json:"auth_id"`
	C      []byte `json:"c"`
}

// AnswerRequest answers an outstanding challenge.
type AnswerRequest struct {
	AuthID string `json:"auth_id"`
	S      []byte `json:"s"`
}

// AnswerResponse carries the resulting session on success.
type AnswerResponse struct {
	SessionID string `json:"session_id"`
}

// bytesToBigInt decodes a magnitude-only big-endian byte string. A nil or
// empty slice decodes to zero, which validation then rejects as
// InvalidArgument.
func bytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
