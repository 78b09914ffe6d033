package auth

import (
	"math/big"
	"testing"

	"github.com/nsheremet/zkpauth/internal/authz"
	"github.com/nsheremet/zkpauth/internal/engine"
	"github.com/nsheremet/zkpauth/internal/passwordhash"
	"github.com/nsheremet/zkpauth/internal/store"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *engine.Engine) {
	t.Helper()
	params, err := engine.GenerateParameters(256, true)
	if err != nil {
		t.Fatalf("GenerateParameters: %v", err)
	}
	e := engine.New(params)
	return New(e, store.New(nil), opts...), e
}

// Happy path with fixed 256-bit parameters and a literal password.
func TestHappyPath(t *testing.T) {
	svc, e := newTestService(t)

	x, err := passwordhash.ToExponent(passwordhash.Fast, "My Super Secret Password")
	if err != nil {
		t.Fatal(err)
	}
	y1, y2 := e.Exponentiate(x)

	if err := svc.Register("U", y1, y2); err != nil {
		t.Fatalf("Register: %v", err)
	}

	k, err := e.RandomExponent()
	if err != nil {
		t.Fatal(err)
	}
	r1, r2 := e.Exponentiate(k)

	challenge, err := svc.IssueChallenge("U", r1, r2)
	if err != nil {
		t.Fatalf("IssueChallenge: %v", err)
	}

	s := e.Solve(x, k, challenge.C)
	sessionID, err := svc.SolveChallenge(challenge.AuthID, s)
	if err != nil {
		t.Fatalf("SolveChallenge: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a non-empty session id")
	}
}

// Registering the same user twice fails with AlreadyExists.
func TestDoubleRegistration(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Register("U", big.NewInt(1), big.NewInt(2)); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := svc.Register("U", big.NewInt(3), big.NewInt(4))
	if !authz.Is(err, authz.AlreadyExists) {
		t.Fatalf("got %v, want AlreadyExists", err)
	}
}

// Registering with a zero commitment fails with InvalidArgument.
func TestRegisterZeroCommitment(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Register("U", big.NewInt(0), big.NewInt(0))
	if !authz.Is(err, authz.InvalidArgument) {
		t.Fatalf("got %v, want InvalidArgument", err)
	}
}

// Issuing a challenge for an unregistered user fails with Unauthenticated,
// not NotFound, to avoid disclosing user existence.
func TestChallengeForUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.IssueChallenge("ghost", big.NewInt(1), big.NewInt(2))
	if !authz.Is(err, authz.Unauthenticated) {
		t.Fatalf("got %v, want Unauthenticated", err)
	}
}

// Issuing a second challenge supersedes the first; solving the superseded
// auth_id fails with Unauthenticated even with a correct s.
func TestSupersedeAndReplay(t *testing.T) {
	svc, e := newTestService(t)

	x, _ := passwordhash.ToExponent(passwordhash.Fast, "My Super Secret Password")
	y1, y2 := e.Exponentiate(x)
	if err := svc.Register("U", y1, y2); err != nil {
		t.Fatalf("Register: %v", err)
	}

	k1, _ := e.RandomExponent()
	r1a, r2a := e.Exponentiate(k1)
	challenge1, err := svc.IssueChallenge("U", r1a, r2a)
	if err != nil {
		t.Fatalf("first IssueChallenge: %v", err)
	}

	k2, _ := e.RandomExponent()
	r1b, r2b := e.Exponentiate(k2)
	if _, err := svc.IssueChallenge("U", r1b, r2b); err != nil {
		t.Fatalf("second IssueChallenge: %v", err)
	}

	correctS := e.Solve(x, k1, challenge1.C)
	_, err = svc.SolveChallenge(challenge1.AuthID, correctS)
	if !authz.Is(err, authz.Unauthenticated) {
		t.Fatalf("got %v, want Unauthenticated (superseded challenge)", err)
	}
}

// A wrong response fails with Unauthenticated; an empty (zero) response
// fails with InvalidArgument.
func TestWrongAndEmptyResponse(t *testing.T) {
	svc, e := newTestService(t)

	x, _ := passwordhash.ToExponent(passwordhash.Fast, "My Super Secret Password")
	y1, y2 := e.Exponentiate(x)
	if err := svc.Register("U", y1, y2); err != nil {
		t.Fatalf("Register: %v", err)
	}
	k, _ := e.RandomExponent()
	r1, r2 := e.Exponentiate(k)
	challenge, err := svc.IssueChallenge("U", r1, r2)
	if err != nil {
		t.Fatalf("IssueChallenge: %v", err)
	}

	_, err = svc.SolveChallenge(challenge.AuthID, big.NewInt(0xAA))
	if !authz.Is(err, authz.Unauthenticated) {
		t.Fatalf("wrong response: got %v, want Unauthenticated", err)
	}

	_, err = svc.SolveChallenge(challenge.AuthID, big.NewInt(0))
	if !authz.Is(err, authz.InvalidArgument) {
		t.Fatalf("empty response: got %v, want InvalidArgument", err)
	}
}

// A failed solve leaves the challenge intact by default (multi-shot) so the
// client can retry with the correct response.
func TestFailedSolveLeavesChallengeByDefault(t *testing.T) {
	svc, e := newTestService(t)

	x, _ := passwordhash.ToExponent(passwordhash.Fast, "My Super Secret Password")
	y1, y2 := e.Exponentiate(x)
	svc.Register("U", y1, y2)
	k, _ := e.RandomExponent()
	r1, r2 := e.Exponentiate(k)
	challenge, _ := svc.IssueChallenge("U", r1, r2)

	svc.SolveChallenge(challenge.AuthID, big.NewInt(0xAA)) // wrong, ignored

	correctS := e.Solve(x, k, challenge.C)
	sessionID, err := svc.SolveChallenge(challenge.AuthID, correctS)
	if err != nil {
		t.Fatalf("retry after a wrong response should succeed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session id on retry")
	}
}

// With WithConsumeChallengeOnFailure(true), a failed solve consumes the
// challenge, so even a subsequent correct response is Unauthenticated.
func TestConsumeOnFailurePolicy(t *testing.T) {
	svc, e := newTestService(t, WithConsumeChallengeOnFailure(true))

	x, _ := passwordhash.ToExponent(passwordhash.Fast, "My Super Secret Password")
	y1, y2 := e.Exponentiate(x)
	svc.Register("U", y1, y2)
	k, _ := e.RandomExponent()
	r1, r2 := e.Exponentiate(k)
	challenge, _ := svc.IssueChallenge("U", r1, r2)

	_, err := svc.SolveChallenge(challenge.AuthID, big.NewInt(0xAA))
	if !authz.Is(err, authz.Unauthenticated) {
		t.Fatalf("got %v, want Unauthenticated", err)
	}

	correctS := e.Solve(x, k, challenge.C)
	_, err = svc.SolveChallenge(challenge.AuthID, correctS)
	if !authz.Is(err, authz.Unauthenticated) {
		t.Fatalf("consumed challenge should not be solvable again, got %v", err)
	}
}

func TestGetParameters(t *testing.T) {
	svc, e := newTestService(t)
	params := svc.GetParameters()
	want := e.Parameters()
	if params.P.Cmp(want.P) != 0 || params.BitSize != want.BitSize {
		t.Fatalf("GetParameters mismatch: %+v vs %+v", params, want)
	}
}
