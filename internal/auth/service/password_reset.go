package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/pkg/cryptox"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// DefaultResetTokenTTL is how long a reset link stays usable.
const DefaultResetTokenTTL = time.Hour

// ResetNotifier delivers a reset link to the account owner.
type ResetNotifier interface {
	SendResetLink(ctx context.Context, user domain.User, link string) error
}

// LogNotifier writes the reset link to the log. There is no mail transport.
type LogNotifier struct{}

func (LogNotifier) SendResetLink(ctx context.Context, user domain.User, link string) error {
	slogx.FromContext(ctx).Info("password reset link issued",
		slog.String("user_id", user.ID),
		slog.String("reset_link", link),
	)
	return nil
}

// ResetIssued is returned by ForgotPassword. Token and Link are empty when
// the email matched no account.
type ResetIssued struct {
	Token string
	Link  string
}

type PasswordResetService struct {
	Store    store.Store
	Hasher   cryptox.PasswordHasher
	Notifier ResetNotifier
	TokenTTL time.Duration
	AppURL   string
	Metrics  *Metrics
	Clock    func() time.Time
}

func (s *PasswordResetService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *PasswordResetService) ttl() time.Duration {
	if s.TokenTTL <= 0 {
		return DefaultResetTokenTTL
	}
	return s.TokenTTL
}

// ResetLink builds APP_URL/reset-password?token=...
func ResetLink(appURL, token string) string {
	return strings.TrimRight(appURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}

// ForgotPassword issues a reset token for a known email, replacing any
// previous one. An unknown email is not an error.
func (s *PasswordResetService) ForgotPassword(ctx context.Context, email string) (ResetIssued, error) {
	issued, err := s.forgotPassword(ctx, email)
	switch {
	case err != nil:
		s.Metrics.passwordReset(StageRequest, resultFor(err))
	case issued.Token == "":
		s.Metrics.passwordReset(StageRequest, ResultUnknownEmail)
	default:
		s.Metrics.passwordReset(StageRequest, ResultSuccess)
	}
	return issued, err
}

func (s *PasswordResetService) forgotPassword(ctx context.Context, email string) (ResetIssued, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" {
		return ResetIssued{}, ErrEmailRequired
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return ResetIssued{}, nil
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return ResetIssued{}, err
	}

	token, fingerprint, err := cryptox.GenerateResetToken()
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return ResetIssued{}, err
	}

	now := s.now()
	err = s.Store.PasswordResets().SavePasswordResetToken(ctx, domain.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: fingerprint,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	})
	if err != nil {
		log.Error("failed to save reset token", slog.String("user_id", user.ID), slog.Any("error", err))
		return ResetIssued{}, err
	}

	link := ResetLink(s.AppURL, token)
	if s.Notifier != nil {
		if err := s.Notifier.SendResetLink(ctx, user, link); err != nil {
			// The token is stored; the user can ask again.
			log.Error("failed to deliver reset link", slog.String("user_id", user.ID), slog.Any("error", err))
		}
	}

	return ResetIssued{Token: token, Link: link}, nil
}

// ResetPassword consumes a live token and sets the new password in one
// transaction. Absent, spent and expired tokens are all ErrInvalidToken.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	err := s.resetPassword(ctx, token, newPassword)
	s.Metrics.passwordReset(StageReset, resultFor(err))
	return err
}

func (s *PasswordResetService) resetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" || newPassword == "" {
		return ErrResetFieldsRequired
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	// Hash before the transaction so bcrypt does not hold the write lock.
	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	fingerprint := cryptox.FingerprintToken(token)
	now := s.now()

	var userID string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.PasswordResets().ConsumePasswordResetToken(ctx, fingerprint, now)
		if err != nil {
			return err
		}
		userID = t.UserID
		return tx.Users().UpdatePasswordHash(ctx, t.UserID, hash)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Covers a spent or expired token as well as a deactivated owner.
			log.Info("password reset rejected: token invalid or expired")
			return ErrInvalidToken
		}
		log.Error("failed to reset password", slog.Any("error", err))
		return err
	}

	log.Info("password reset completed", slog.String("user_id", userID))
	return nil
}
