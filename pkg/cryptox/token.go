package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ResetTokenSize is the number of random bytes behind a password reset token
// (256 bits, 64 hex chars).
const ResetTokenSize = 32

// GenerateToken creates a cryptographically secure random token of the given
// byte length, hex encoded.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// GenerateResetToken returns a fresh password reset token together with the
// fingerprint that gets persisted. Only the fingerprint is ever stored.
func GenerateResetToken() (token, fingerprint string, err error) {
	token, err = GenerateToken(ResetTokenSize)
	if err != nil {
		return "", "", err
	}
	return token, FingerprintToken(token), nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// base64url encoded (43 chars). Stores look tokens up by this value.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
