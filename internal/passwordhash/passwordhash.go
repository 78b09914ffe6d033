// Package passwordhash maps a user-supplied password string to the exponent
// x used as the Chaum-Pedersen secret. It exposes a fast, non-cryptographic
// default plus two intermediate hash-based modes and a KDF-backed mode,
// selectable behind one interface so the mapping can be hardened without
// touching the protocol.
package passwordhash

import (
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Mode selects which H implementation ToExponent uses.
type Mode string

const (
	// Fast is the default mode: a fast, non-cryptographic 64-bit hash
	// reinterpreted as a non-negative integer. It offers no resistance to
	// offline dictionary attacks.
	Fast Mode = "fast"
	// Blake2b hashes the password with BLAKE2b-256 and reads the digest as
	// a big-endian exponent. It is unsalted: identical passwords on
	// different accounts map to the same exponent.
	Blake2b Mode = "blake2b"
	// SHA3 hashes the password with SHA3-256.
	SHA3 Mode = "sha3"
	// Argon2 runs the password through Argon2id, a memory-hard KDF that can
	// replace the faster modes without any other protocol change.
	Argon2 Mode = "argon2"
)

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// ToExponent maps password to a non-negative integer exponent using the
// given mode. An unknown mode is an error, not a silent fallback.
func ToExponent(mode Mode, password string) (*big.Int, error) {
	switch mode {
	case Fast, "":
		h := xxhash.Sum64String(password)
		return new(big.Int).SetUint64(h), nil
	case Blake2b:
		sum := blake2b.Sum256([]byte(password))
		return new(big.Int).SetBytes(sum[:]), nil
	case SHA3:
		sum := sha3.Sum256([]byte(password))
		return new(big.Int).SetBytes(sum[:]), nil
	case Argon2:
		// No per-user salt: the protocol has nowhere to carry one without
		// changing the registration wire format, so this mode is only as
		// strong as Argon2 over one fixed salt shared by every password.
		// It still dominates Fast/Blake2b/SHA3 for offline
		// dictionary resistance.
		key := argon2.IDKey([]byte(password), []byte("zkpauth-argon2"), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
		return new(big.Int).SetBytes(key), nil
	default:
		return nil, fmt.Errorf("passwordhash: unknown mode %q", mode)
	}
}
