// Package cryptox implements the credential-verification policy used by the
// identity manager. A Verifier turns a submitted secret into the stored form
// and checks a submitted secret against a stored one; the identity manager is
// agnostic to which policy is active.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Verifier is the credential policy contract. Swapping implementations
// changes how credentials are stored and checked without touching any
// identity logic.
type Verifier interface {
	// Hash converts a plaintext secret into its stored representation.
	Hash(secret string) (string, error)
	// Verify reports whether secret matches the stored representation.
	Verify(secret, stored string) (bool, error)
}

// Plain stores credentials as-is and compares them in constant time. This is
// the baseline policy of the marketplace client; Argon2 is the hardened
// drop-in replacement.
type Plain struct{}

var _ Verifier = (*Plain)(nil)

func (Plain) Hash(secret string) (string, error) {
	return secret, nil
}

func (Plain) Verify(secret, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(secret), []byte(stored)) == 1, nil
}

// Argon2 verifies credentials against argon2id hashes in the standard
// "$argon2id$v=..$m=..,t=..,p=..$salt$hash" encoding.
type Argon2 struct {
	Memory      uint32 // memory cost in KiB
	Iterations  uint32 // time cost
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

var _ Verifier = (*Argon2)(nil)

var ErrMalformedHash = errors.New("malformed argon2 hash")

// NewArgon2 returns an Argon2 verifier with OWASP-recommended parameters.
func NewArgon2() *Argon2 {
	return &Argon2{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func (a *Argon2) Hash(secret string) (string, error) {
	salt := make([]byte, a.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret), salt, a.Iterations, a.Memory, a.Parallelism, a.KeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.Memory,
		a.Iterations,
		a.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))

	return encoded, nil
}

func (a *Argon2) Verify(secret, stored string) (bool, error) {
	memory, iterations, parallelism, salt, hash, err := decodeArgon2Hash(stored)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(secret), salt, iterations, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}

func decodeArgon2Hash(encoded string) (memory, iterations uint32, parallelism uint8, salt, hash []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return memory, iterations, parallelism, salt, hash, nil
}
