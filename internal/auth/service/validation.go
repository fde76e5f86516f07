package service

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/aussiebroadwan/planner/pkg/cryptox"
)

// MinPasswordLength is counted in UTF-16 code units, the way the web client
// measures it. A character outside the BMP counts twice.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an address. Lookups and inserts both
// go through it so that the unique constraint is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validatePassword(password string) error {
	if utf16Len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > cryptox.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
