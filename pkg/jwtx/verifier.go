package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and gives back the claims if it's legit.
// Verify never panics: garbage input is reported as an error.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier validates tokens signed by an HS256Signer.
type HS256Verifier struct {
	secret []byte

	// now overrides the clock in tests.
	now func() time.Time
}

// NewVerifierHS256 creates a verifier for the given secret.
func NewVerifierHS256(secret []byte) (*HS256Verifier, error) {
	if len(secret) < MinSecretBytes {
		return nil, ErrWeakSecret
	}
	return &HS256Verifier{secret: append([]byte(nil), secret...)}, nil
}

// WithClock returns a copy of the verifier that reads time from now.
func (v *HS256Verifier) WithClock(now func() time.Time) *HS256Verifier {
	return &HS256Verifier{secret: v.secret, now: now}
}

// Verify checks signature, algorithm and expiry.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	if tokenStr == "" {
		return Claims{}, ErrMalformed
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if v.now != nil {
		opts = append(opts, jwt.WithTimeFunc(v.now))
	}
	parser := jwt.NewParser(opts...)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable), errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, ErrInvalidClaim):
		return ErrInvalidClaim
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
