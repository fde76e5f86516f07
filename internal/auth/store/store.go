package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a transaction-scoped Store
// hands out the same repos bound to the transaction, and nobody nests a
// transaction inside another by accident.
type Store interface {
	Users() Users
	PasswordResets() PasswordResets
	Preferences() Preferences

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A non-nil error from fn rolls
	// the transaction back, nil commits it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the caller via ULID).
	// Returns ErrAlreadyExists when the email is taken, active or not.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetUserByEmail returns an active user by normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns an active user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpdatePasswordHash overwrites password_hash and bumps updated_at.
	// Returns ErrNotFound when no active user has that id.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// DeactivateUser clears the active flag. Lookups treat the user as gone.
	DeactivateUser(ctx context.Context, userID string) error
}

type PasswordResets interface {
	// SavePasswordResetToken upserts the single reset row for the token's
	// user, replacing hash, expiry and created_at.
	SavePasswordResetToken(ctx context.Context, t domain.PasswordResetToken) error

	// GetPasswordResetToken looks a token up by fingerprint, expired or not.
	GetPasswordResetToken(ctx context.Context, tokenHash string) (domain.PasswordResetToken, error)

	// ConsumePasswordResetToken deletes and returns the token in one
	// statement, only if it is still live at now. Of two concurrent callers
	// with the same token at most one gets a row back.
	ConsumePasswordResetToken(ctx context.Context, tokenHash string, now time.Time) (domain.PasswordResetToken, error)

	// DeletePasswordResetToken is idempotent.
	DeletePasswordResetToken(ctx context.Context, tokenHash string) error

	// DeleteExpiredPasswordResetTokens is housekeeping.
	DeleteExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Preferences interface {
	// CreatePreferences inserts the preference row for a user.
	CreatePreferences(ctx context.Context, p domain.Preferences) error

	// GetPreferences returns the preference row for a user.
	GetPreferences(ctx context.Context, userID string) (domain.Preferences, error)
}
