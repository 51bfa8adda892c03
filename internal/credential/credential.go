// Package credential hashes and verifies account passwords with bcrypt.
package credential

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
)

const (
	CodeHashFailure   = "hash_failure"
	CodeHashMalformed = "hash_malformed"
)

// maxSecretBytes is the longest input bcrypt reads. Longer secrets are cut to
// this length before hashing and verifying.
const maxSecretBytes = 72

// Hasher carries the work factor shared by every hash and verify call site.
type Hasher struct {
	cost  int
	dummy string
}

// NewHasher returns a Hasher using cost, clamped to bcrypt's accepted range.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	h := &Hasher{cost: cost}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, apperr.Internal(CodeHashFailure, err)
	}
	dummy, err := h.Hash(hex.EncodeToString(buf))
	if err != nil {
		return nil, err
	}
	h.dummy = dummy
	return h, nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns a salted one-way hash of secret. Two calls with the same
// secret produce different values. Only the first 72 bytes are significant.
func (h *Hasher) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword(truncate(secret), h.cost)
	if err != nil {
		return "", apperr.Internal(CodeHashFailure, err)
	}
	return string(out), nil
}

// Verify reports whether secret produced stored. A mismatch is not an error;
// only a malformed stored hash is.
func (h *Hasher) Verify(secret, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), truncate(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperr.Internal(CodeHashMalformed, err)
	}
}

// Dummy returns a valid hash of a random secret. Verifying against it takes
// as long as a real check, so unknown usernames cost the same as wrong passwords.
func (h *Hasher) Dummy() string { return h.dummy }

func truncate(secret string) []byte {
	b := []byte(secret)
	if len(b) > maxSecretBytes {
		b = b[:maxSecretBytes]
	}
	return b
}
