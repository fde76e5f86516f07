package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor of hashes already stored by the
// planner, so existing accounts keep verifying.
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

var (
	ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")
	ErrMalformedHash   = errors.New("cryptox: malformed password hash")
)

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify returns false, nil for a wrong password. An error means the
	// stored hash could not be used at all.
	Verify(password, hash string) (bool, error)
}

// BcryptHasher is a PasswordHasher backed by bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher with the given cost, falling back to
// DefaultBcryptCost when cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash returns a salted bcrypt hash. Two calls with the same password return
// different strings.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	cost := h.Cost
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(b), nil
}

// Verify never accepts a password longer than MaxPasswordBytes, since bcrypt
// would compare only its prefix. The comparison still runs so rejected input
// costs the same as a real attempt.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	if len(password) > MaxPasswordBytes {
		_ = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password[:MaxPasswordBytes]))
		return false, ErrPasswordTooLong
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case errors.Is(err, bcrypt.ErrHashTooShort):
		return false, ErrMalformedHash
	default:
		// Invalid prefix or cost in the stored value.
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
