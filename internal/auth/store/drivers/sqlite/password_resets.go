package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite/gen"
)

type passwordResetsRepo struct {
	q *gen.Queries
}

func (r *passwordResetsRepo) SavePasswordResetToken(ctx context.Context, t domain.PasswordResetToken) error {
	err := r.q.UpsertPasswordResetToken(ctx, gen.UpsertPasswordResetTokenParams{
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt.UTC(),
		CreatedAt: orNow(t.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetPasswordResetToken(ctx context.Context, tokenHash string) (domain.PasswordResetToken, error) {
	row, err := r.q.GetPasswordResetToken(ctx, tokenHash)
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err)
	}
	return mapPasswordResetToken(row), nil
}

func (r *passwordResetsRepo) ConsumePasswordResetToken(
	ctx context.Context,
	tokenHash string,
	now time.Time,
) (domain.PasswordResetToken, error) {
	row, err := r.q.ConsumePasswordResetToken(ctx, gen.ConsumePasswordResetTokenParams{
		TokenHash: tokenHash,
		ExpiresAt: now.UTC(),
	})
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err)
	}
	// Only the identifying columns come back from the DELETE.
	return domain.PasswordResetToken{UserID: row.UserID, TokenHash: row.TokenHash}, nil
}

func (r *passwordResetsRepo) DeletePasswordResetToken(ctx context.Context, tokenHash string) error {
	return r.q.DeletePasswordResetToken(ctx, tokenHash)
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredPasswordResetTokens(ctx, now.UTC())
}
