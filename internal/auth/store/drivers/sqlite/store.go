package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite/gen"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Connection options applied to every pooled connection unless the DSN
// already names them.
var defaultParams = []struct{ key, value string }{
	{"_pragma", "foreign_keys(1)"},
	{"_pragma", "busy_timeout(5000)"},
	{"_pragma", "journal_mode(WAL)"},
	{"_time_format", "sqlite"},
	{"_txlock", "immediate"},
}

var _ store.Store = (*Store)(nil)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	dsn = buildDSN(dsn)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

// buildDSN appends the default connection parameters. A bare path such as
// "planner.db" is accepted as well as a "file:" URI.
func buildDSN(dsn string) string {
	var b strings.Builder
	b.WriteString(dsn)

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	for _, p := range defaultParams {
		if p.key == "_pragma" {
			name, _, _ := strings.Cut(p.value, "(")
			if strings.Contains(dsn, "_pragma="+name) {
				continue
			}
		} else if strings.Contains(dsn, p.key+"=") {
			continue
		}
		b.WriteString(sep)
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(p.value)
		sep = "&"
	}
	return b.String()
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users                   { return &usersRepo{q: s.q} }
func (s *Store) PasswordResets() store.PasswordResets { return &passwordResetsRepo{q: s.q} }
func (s *Store) Preferences() store.Preferences       { return &preferencesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns a UNIQUE or PRIMARY KEY violation into ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *moderncsqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// nowUTC is the single source of write timestamps. Everything is stored in
// UTC so that text comparisons on expires_at order correctly.
func nowUTC() time.Time { return time.Now().UTC() }

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return nowUTC()
	}
	return t.UTC()
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		AvatarURL:    mapNullStringPtr(row.AvatarUrl),
		Timezone:     row.Timezone,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func mapPasswordResetToken(row gen.PasswordResetToken) domain.PasswordResetToken {
	return domain.PasswordResetToken{
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}

func mapPreferences(row gen.UserPreference) domain.Preferences {
	return domain.Preferences{
		ID:                   row.ID,
		UserID:               row.UserID,
		Theme:                domain.Theme(row.Theme),
		DefaultView:          domain.View(row.DefaultView),
		NotificationsEnabled: row.NotificationsEnabled,
		EmailReminders:       row.EmailReminders,
		StartWeekOn:          domain.Weekday(row.StartWeekOn),
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
