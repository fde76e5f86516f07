package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a session token stays valid after issuance.
// It also drives the session cookie Max-Age.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. The token is self-contained: there is
// no server-side session record to consult.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// NewSessionClaims builds claims for a freshly authenticated user.
func NewSessionClaims(userID, email string, ttl time.Duration, now time.Time) Claims {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	}
}

// ValidateExpiry ensures the token hasn't expired at the given instant.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil || !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}

// Validate is called by the jwt parser after the registered claims pass.
func (c Claims) Validate() error {
	if c.UserID == "" || c.Email == "" {
		return ErrInvalidClaim
	}
	return nil
}
