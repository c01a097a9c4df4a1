// Package hasher wraps bcrypt as the one-way password hashing primitive.
package hasher

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("password does not match")

// Bcrypt hashes and verifies passwords with a fixed cost.
// Passwords are pre-hashed with SHA-256 so that bcrypt's 72-byte input
// limit never rejects or truncates a long password.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher. Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash derives the stored hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(prehash(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare returns ErrMismatch when password does not produce hash.
func (b *Bcrypt) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// prehash returns the base64 SHA-256 digest of password, always 44 bytes.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
