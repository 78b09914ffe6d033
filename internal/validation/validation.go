// Package validation implements pure request-precondition checks, separated
// from orchestration so they can be tested independently. Each function
// takes the store lookups it needs as plain arguments rather than holding a
// store reference itself, keeping the dependency explicit and the function
// pure from the caller's point of view.
package validation

import (
	"math/big"

	"github.com/nsheremet/zkpauth/internal/authz"
)

// Registration validates a user-registration request. userExists reports
// whether userID is already present in the store.
func Registration(userID string, y1, y2 *big.Int, userExists bool) error {
	if userID == "" {
		return authz.New(authz.InvalidArgument)
	}
	if isZero(y1) || isZero(y2) {
		return authz.New(authz.InvalidArgument)
	}
	if userExists {
		return authz.New(authz.AlreadyExists)
	}
	return nil
}

// ChallengeRequest validates a challenge-issuance request. userFound reports
// whether userID is present in the store.
//
// Note the asymmetry with Registration: an absent user here is reported as
// Unauthenticated, not NotFound, so an anonymous caller cannot use this
// endpoint to discover which user ids are registered.
func ChallengeRequest(userID string, r1, r2 *big.Int, userFound bool) error {
	if userID == "" {
		return authz.New(authz.InvalidArgument)
	}
	if isZero(r1) || isZero(r2) {
		return authz.New(authz.InvalidArgument)
	}
	if !userFound {
		return authz.New(authz.Unauthenticated)
	}
	return nil
}

// Solution validates a challenge-solution (verify) request. challengeOK
// reports whether the referenced auth_id was found.
func Solution(challengeOK bool, s *big.Int) error {
	if !challengeOK {
		return authz.New(authz.Unauthenticated)
	}
	if isZero(s) {
		return authz.New(authz.InvalidArgument)
	}
	return nil
}

func isZero(x *big.Int) bool {
	return x == nil || x.Sign() == 0
}
