package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the services return for a caller mistake wraps
// exactly one of these; anything else is an internal failure.
var (
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("conflict")
	ErrAuthentication = errors.New("authentication failed")
	ErrNotFound       = errors.New("not found")
	ErrInvalidToken   = errors.New("invalid or expired token")
)

var (
	ErrRegisterFieldsRequired = fmt.Errorf("%w: name, email, password and confirmation are required", ErrValidation)
	ErrCredentialsRequired    = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrEmailRequired          = fmt.Errorf("%w: email is required", ErrValidation)
	ErrResetFieldsRequired    = fmt.Errorf("%w: token and new password are required", ErrValidation)
	ErrPasswordMismatch       = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrPasswordTooShort       = fmt.Errorf("%w: password too short", ErrValidation)
	ErrPasswordTooLong        = fmt.Errorf("%w: password too long", ErrValidation)
	ErrInvalidEmail           = fmt.Errorf("%w: invalid email", ErrValidation)

	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	ErrInvalidSession     = fmt.Errorf("%w: invalid session", ErrAuthentication)

	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)
