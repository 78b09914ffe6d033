// Package auth implements the per-user authentication state machine:
// register, issue a one-shot (or multi-shot, depending on policy) challenge,
// and promote a verified challenge to a session. It orchestrates
// internal/validation, internal/engine, and internal/store: validate, mutate
// the store, return a typed error.
package auth

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/nsheremet/zkpauth/internal/authz"
	"github.com/nsheremet/zkpauth/internal/engine"
	"github.com/nsheremet/zkpauth/internal/store"
	"github.com/nsheremet/zkpauth/internal/validation"
)

// ChallengeResponse is returned by IssueChallenge: the opaque id the client
// must echo back on VerifyAuthentication, and the verifier's challenge
// scalar.
type ChallengeResponse struct {
	AuthID string
	C      *big.Int
}

// Service orchestrates the Chaum-Pedersen state machine against a single
// Engine and Store. The engine and the store are each guarded by their own
// reader-writer lock; the only operation that needs both is IssueChallenge,
// which acquires the engine lock for the random draw, releases it, and only
// then acquires the store's write lock, so the two locks are never held
// simultaneously and no deadlock is possible.
type Service struct {
	engine *engineGuard
	store  *store.Store

	// consumeOnFailure controls whether a failed VerifyAuthentication call
	// deletes the outstanding challenge (one-shot, stricter) or leaves it
	// for retry (multi-shot). Defaults to false (multi-shot).
	consumeOnFailure bool
}

// Option configures a Service at construction time.
type Option func(*Service)

// WithConsumeChallengeOnFailure sets whether a failed VerifyAuthentication
// deletes the outstanding challenge instead of leaving it available for
// retry.
func WithConsumeChallengeOnFailure(consume bool) Option {
	return func(s *Service) { s.consumeOnFailure = consume }
}

// New constructs a Service around e and st.
func New(e *engine.Engine, st *store.Store, opts ...Option) *Service {
	s := &Service{engine: newEngineGuard(e), store: st}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetParameters returns a snapshot of the engine's group parameters.
func (s *Service) GetParameters() engine.Parameters {
	s.engine.RLock()
	defer s.engine.RUnlock()
	return s.engine.e.Parameters()
}

// Register validates and creates a new User. It does not verify that y1, y2
// are actual subgroup elements or that they derive from the same exponent:
// the client has no way to prove that without a zero-knowledge proof over
// registration itself. This is a known limitation, not a bug.
func (s *Service) Register(userID string, y1, y2 *big.Int) error {
	_, exists := s.store.GetUser(userID)
	if err := validation.Registration(userID, y1, y2, exists); err != nil {
		return err
	}
	s.store.CreateUser(userID, y1, y2)
	return nil
}

// IssueChallenge validates the request, draws a fresh challenge scalar c and
// auth_id, and installs the challenge for userID, superseding (deleting)
// any challenge the user already has outstanding.
func (s *Service) IssueChallenge(userID string, r1, r2 *big.Int) (ChallengeResponse, error) {
	user, found := s.store.GetUser(userID)
	if err := validation.ChallengeRequest(userID, r1, r2, found); err != nil {
		return ChallengeResponse{}, err
	}

	s.engine.Lock()
	c, err := s.engine.e.RandomExponent()
	s.engine.Unlock()
	if err != nil {
		return ChallengeResponse{}, fmt.Errorf("auth: drawing challenge scalar: %w", err)
	}
	authID := uuid.NewString()

	if user.AuthID != "" {
		s.store.DeleteChallenge(user.AuthID)
	}
	s.store.CreateChallenge(userID, authID, c, r1, r2)

	return ChallengeResponse{AuthID: authID, C: c}, nil
}

// SolveChallenge validates the response, verifies it against the challenge
// and the owning user's commitments, and on success deletes the challenge
// and creates a new session. On failure it returns Unauthenticated; whether
// the challenge survives for a retry is governed by consumeOnFailure.
func (s *Service) SolveChallenge(authID string, response *big.Int) (sessionID string, err error) {
	challenge, found := s.store.GetChallenge(authID)
	if err := validation.Solution(found, response); err != nil {
		return "", err
	}

	user, ok := s.store.GetUser(challenge.UserID)
	if !ok {
		// Every challenge's user_id is guaranteed to refer to an existing
		// user; reaching this means the store's invariants were violated.
		panic(fmt.Sprintf("auth: challenge %s references missing user %s", authID, challenge.UserID))
	}

	s.engine.RLock()
	ok = s.engine.e.Verify(user.Y1, user.Y2, challenge.R1, challenge.R2, response, challenge.C)
	s.engine.RUnlock()

	if !ok {
		if s.consumeOnFailure {
			s.store.DeleteChallenge(authID)
		}
		return "", authz.New(authz.Unauthenticated)
	}

	sessionID = uuid.NewString()
	s.store.CreateSession(challenge.UserID, sessionID)
	s.store.DeleteChallenge(authID)

	return sessionID, nil
}
