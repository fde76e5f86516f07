// Package postgres implements store.Store on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"

	"github.com/aussiebroadwan/planner/internal/auth/store"
)

const (
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
)

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// poolIface is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type poolIface interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var _ store.Store = (*Store)(nil)

type Store struct {
	pool poolIface
	dsn  string
}

// NewStore opens a pool and waits for the server to answer, retrying with
// exponential backoff while it starts up.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "create pool").Wrap(err)
	}

	backoff := retry.WithMaxRetries(connectAttempts, retry.NewExponential(connectBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "ping").Wrap(err)
	}

	return &Store{pool: pool, dsn: dsn}, nil
}

func newStoreWithPool(pool poolIface) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, oops.Code("TX_BEGIN_FAILED").Wrap(err)
	}
	return &txStore{tx: tx, ctx: ctx}, nil
}

// WithTx executes fn within a transaction. Rollback after a successful
// commit is a no-op.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users                   { return &usersRepo{q: s.pool} }
func (s *Store) PasswordResets() store.PasswordResets { return &passwordResetsRepo{q: s.pool} }
func (s *Store) Preferences() store.Preferences       { return &preferencesRepo{q: s.pool} }

func mapNotFound(err error, operation string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return oops.With("operation", operation).Wrap(err)
}

func mapConstraint(err error, operation string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return store.ErrAlreadyExists
	}
	return oops.With("operation", operation).Wrap(err)
}
