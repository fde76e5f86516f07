package domain

import "time"

// PasswordResetToken is the stored half of a reset capability. The raw token
// is only ever held by the user; TokenHash is its fingerprint.
type PasswordResetToken struct {
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is no longer usable at now. A token
// expiring exactly at now is already expired.
func (t PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
