package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
)

type passwordResetsRepo struct {
	q querier
}

func scanResetToken(row interface{ Scan(dest ...any) error }) (domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	err := row.Scan(&t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	return t, err
}

func (r *passwordResetsRepo) SavePasswordResetToken(ctx context.Context, t domain.PasswordResetToken) error {
	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err := r.q.Exec(ctx,
		`INSERT INTO password_reset_tokens (user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET token_hash = EXCLUDED.token_hash,
		     expires_at = EXCLUDED.expires_at,
		     created_at = EXCLUDED.created_at`,
		t.UserID, t.TokenHash, t.ExpiresAt.UTC(), created,
	)
	if err != nil {
		return mapConstraint(err, "save password reset token")
	}
	return nil
}

func (r *passwordResetsRepo) GetPasswordResetToken(ctx context.Context, tokenHash string) (domain.PasswordResetToken, error) {
	row := r.q.QueryRow(ctx,
		`SELECT user_id, token_hash, expires_at, created_at
		 FROM password_reset_tokens WHERE token_hash = $1`,
		tokenHash,
	)
	t, err := scanResetToken(row)
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err, "get password reset token")
	}
	return t, nil
}

// ConsumePasswordResetToken relies on the row lock taken by DELETE: a second
// transaction deleting the same row waits, then finds nothing to return.
func (r *passwordResetsRepo) ConsumePasswordResetToken(
	ctx context.Context,
	tokenHash string,
	now time.Time,
) (domain.PasswordResetToken, error) {
	row := r.q.QueryRow(ctx,
		`DELETE FROM password_reset_tokens
		 WHERE token_hash = $1 AND expires_at > $2
		 RETURNING user_id, token_hash, expires_at, created_at`,
		tokenHash, now.UTC(),
	)
	t, err := scanResetToken(row)
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err, "consume password reset token")
	}
	return t, nil
}

func (r *passwordResetsRepo) DeletePasswordResetToken(ctx context.Context, tokenHash string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM password_reset_tokens WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return mapNotFound(err, "delete password reset token")
	}
	return nil
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM password_reset_tokens WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, mapNotFound(err, "delete expired password reset tokens")
	}
	return tag.RowsAffected(), nil
}
