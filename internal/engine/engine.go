// Package engine implements the Chaum-Pedersen arithmetic: parameter
// selection, two-point exponentiation, random exponent generation, the
// prover's response solver, and the verifier's predicate. All arithmetic is
// modular-exponent-and-multiply over math/big, against a bit-size-keyed
// table of precomputed safe-prime groups or a freshly generated one.
//
// An Engine is safe for concurrent use: Parameters are immutable after
// construction and RandomExponent draws from crypto/rand, which is itself
// safe for concurrent use. Callers that need to serialize a random draw
// against other state changes (for example, to keep challenge issuance
// ordered) hold their own lock around the call.
package engine

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/nsheremet/zkpauth/internal/authz"
)

// Parameters is an immutable Chaum-Pedersen group description: a safe prime
// modulus P (P = 2Q+1, Q prime), the subgroup order Q, and two generators G,
// H of the order-Q subgroup. ConstantTimeVerify, when set, makes Verify
// compare byte-for-byte in constant time instead of using big.Int.Cmp's
// early-exit comparison.
type Parameters struct {
	P                  *big.Int
	Q                  *big.Int
	G                  *big.Int
	H                  *big.Int
	BitSize            int
	ConstantTimeVerify bool
}

// Clone returns a deep copy of p, safe to hand to a caller that must not be
// able to mutate the engine's parameters through shared big.Int pointers.
func (p Parameters) Clone() Parameters {
	return Parameters{
		P:                  new(big.Int).Set(p.P),
		Q:                  new(big.Int).Set(p.Q),
		G:                  new(big.Int).Set(p.G),
		H:                  new(big.Int).Set(p.H),
		BitSize:            p.BitSize,
		ConstantTimeVerify: p.ConstantTimeVerify,
	}
}

// Engine holds a Parameters value and draws random exponents against
// crypto/rand on demand. The zero value is not usable; construct with New.
// Engine has no mutable fields of its own: RandomExponent reads directly
// from the process-wide crypto/rand source, so callers only need to
// synchronize RandomExponent calls when their own protocol requires it.
type Engine struct {
	params Parameters
}

// New constructs an Engine around an already-built Parameters value, as
// returned by GenerateParameters.
func New(params Parameters) *Engine {
	return &Engine{params: params.Clone()}
}

// GenerateParameters returns a Parameters value for the requested bit size.
// When useFixed is true it looks up the built-in table and returns an
// authz.UnsupportedBitSize error if no entry exists for bitSize. Otherwise it samples a fresh safe prime of
// exactly bitSize bits, derives Q = (P-1)/2, and fixes G=4, H=9: both
// quadratic residues modulo a safe prime, hence members of the order-Q
// subgroup.
func GenerateParameters(bitSize int, useFixed bool) (Parameters, error) {
	if useFixed {
		p, ok := fixedParameters[bitSize]
		if !ok {
			return Parameters{}, authz.Newf(authz.UnsupportedBitSize, "engine: no fixed parameters for bit size %d", bitSize)
		}
		return p.Clone(), nil
	}

	p, err := safePrime(bitSize)
	if err != nil {
		return Parameters{}, fmt.Errorf("engine: generating safe prime: %w", err)
	}
	q := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)

	return Parameters{
		P:       p,
		Q:       q,
		G:       big.NewInt(4),
		H:       big.NewInt(9),
		BitSize: bitSize,
	}, nil
}

// safePrime samples a prime p of exactly bits bits such that (p-1)/2 is also
// prime, using crypto/rand and math/big's Miller-Rabin-backed primality test.
func safePrime(bits int) (*big.Int, error) {
	for {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, err
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big.NewInt(1))
		if p.ProbablyPrime(20) {
			return p, nil
		}
	}
}

// Parameters returns a deep copy of the engine's group parameters.
func (e *Engine) Parameters() Parameters {
	return e.params.Clone()
}

// Exponentiate returns (g^x mod p, h^x mod p). x may be any non-negative
// integer; reduction happens implicitly inside big.Int.Exp.
func (e *Engine) Exponentiate(x *big.Int) (y1, y2 *big.Int) {
	y1 = new(big.Int).Exp(e.params.G, x, e.params.P)
	y2 = new(big.Int).Exp(e.params.H, x, e.params.P)
	return y1, y2
}

// RandomExponent samples a uniformly random integer in [0, 2^BitSize) (at
// most BitSize bits; the top bit is not forced) from crypto/rand, rejecting
// values <= 1 and resampling until the result is >= 2. It is the only operation on Engine that touches external entropy;
// callers that need exclusive access to the draw should hold their own lock
// around the call.
func (e *Engine) RandomExponent() (*big.Int, error) {
	for {
		k, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(e.params.BitSize)))
		if err != nil {
			return nil, fmt.Errorf("engine: reading entropy: %w", err)
		}
		if k.Cmp(big.NewInt(1)) > 0 {
			return k, nil
		}
	}
}

// Solve computes s = (k - c*x) mod q. big.Int.Mod is a Euclidean modulus, so
// a negative intermediate result of any size still lands in [0, q).
func (e *Engine) Solve(x, k, c *big.Int) *big.Int {
	s := new(big.Int).Mul(c, x)
	s.Sub(k, s)
	s.Mod(s, e.params.Q)
	return s
}

// Verify computes v1 = g^s * y1^c mod p and v2 = h^s * y2^c mod p and reports
// whether v1 == r1 and v2 == r2. When Parameters.ConstantTimeVerify is set,
// the comparison is done byte-for-byte via crypto/subtle rather than
// big.Int.Cmp's early-exit comparison.
func (e *Engine) Verify(y1, y2, r1, r2, s, c *big.Int) bool {
	v1 := new(big.Int).Exp(e.params.G, s, e.params.P)
	v1.Mul(v1, new(big.Int).Exp(y1, c, e.params.P))
	v1.Mod(v1, e.params.P)

	v2 := new(big.Int).Exp(e.params.H, s, e.params.P)
	v2.Mul(v2, new(big.Int).Exp(y2, c, e.params.P))
	v2.Mod(v2, e.params.P)

	if e.params.ConstantTimeVerify {
		return subtleEqual(v1, r1) && subtleEqual(v2, r2)
	}
	return v1.Cmp(r1) == 0 && v2.Cmp(r2) == 0
}

// subtleEqual compares two big.Ints' byte representations in constant time,
// padding the shorter to the longer's length so the comparison never leaks
// length via early exit on len mismatch.
func subtleEqual(a, b *big.Int) bool {
	ab, bb := a.Bytes(), b.Bytes()
	n := len(ab)
	if len(bb) > n {
		n = len(bb)
	}
	apad := make([]byte, n)
	bpad := make([]byte, n)
	copy(apad[n-len(ab):], ab)
	copy(bpad[n-len(bb):], bb)
	return subtle.ConstantTimeCompare(apad, bpad) == 1
}
