package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/pkg/cryptox"
	"github.com/aussiebroadwan/planner/pkg/idx"
	"github.com/aussiebroadwan/planner/pkg/jwtx"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// Identity is what the event and task modules need from the auth core to
// enforce ownership.
type Identity interface {
	VerifySession(token string) (jwtx.Claims, error)
	CurrentUser(ctx context.Context, token string) (domain.PublicUser, error)
}

var _ Identity = (*AuthService)(nil)

// RegisterInput is the raw registration form. Nothing is trimmed yet.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Session is a freshly minted session for a user.
type Session struct {
	User  domain.PublicUser
	Token string
}

type AuthService struct {
	Store      store.Store
	Hasher     cryptox.PasswordHasher
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	SessionTTL time.Duration
	Metrics    *Metrics
	Clock      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func (s *AuthService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Register validates the form, creates the account with default preferences
// and returns a session for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	sess, err := s.register(ctx, in)
	s.Metrics.registration(resultFor(err))
	return sess, err
}

func (s *AuthService) register(ctx context.Context, in RegisterInput) (Session, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)

	if name == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return Session{}, ErrRegisterFieldsRequired
	}
	if in.Password != in.ConfirmPassword {
		return Session{}, ErrPasswordMismatch
	}
	if err := validatePassword(in.Password); err != nil {
		return Session{}, err
	}
	if !validEmail(email) {
		return Session{}, ErrInvalidEmail
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info("registration rejected: email already registered")
		return Session{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up email", slog.Any("error", err))
		return Session{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Timezone:     domain.DefaultTimezone,
			IsActive:     true,
		})
		if err != nil {
			return err
		}
		return tx.Preferences().CreatePreferences(ctx, domain.DefaultPreferences(idx.New().String(), user.ID))
	})
	if err != nil {
		// A concurrent registration can win the race between lookup and insert.
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return Session{}, err
	}

	token, err := s.issue(user)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return Session{User: user.Public(), Token: token}, nil
}

// AuthenticateUser checks an email and password pair. Unknown emails and
// wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) AuthenticateUser(ctx context.Context, email, password string) (Session, error) {
	sess, err := s.authenticate(ctx, email, password)
	s.Metrics.login(resultFor(err))
	return sess, err
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrCredentialsRequired
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to look up user", slog.Any("error", err))
			return Session{}, err
		}
		// Same bcrypt work as a real comparison.
		s.burnComparison(password)
		log.Info("login failed: unknown email")
		return Session{}, ErrInvalidCredentials
	}

	ok, err := s.Hasher.Verify(password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			log.Info("login failed: password too long", slog.String("user_id", user.ID))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("stored password hash unusable", slog.String("user_id", user.ID), slog.Any("error", err))
		return Session{}, err
	}
	if !ok {
		log.Info("login failed: wrong password", slog.String("user_id", user.ID))
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return Session{User: user.Public(), Token: token}, nil
}

// TTL is how long issued sessions stay valid. The session cookie uses the
// same lifetime.
func (s *AuthService) TTL() time.Duration {
	if s.SessionTTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.SessionTTL
}

func (s *AuthService) issue(u domain.User) (string, error) {
	return s.Signer.Sign(jwtx.NewSessionClaims(u.ID, u.Email, s.TTL(), s.now()))
}

func (s *AuthService) burnComparison(password string) {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("planner-dummy-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	if s.dummyHash != "" {
		_, _ = s.Hasher.Verify(password, s.dummyHash)
	}
}

// VerifySession checks signature and expiry of a session token.
func (s *AuthService) VerifySession(token string) (jwtx.Claims, error) {
	if token == "" {
		return jwtx.Claims{}, ErrInvalidSession
	}
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return claims, nil
}

// CurrentUser resolves a session token to the active user it names.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.PublicUser, error) {
	claims, err := s.VerifySession(token)
	if err != nil {
		return domain.PublicUser{}, err
	}
	user, err := s.userByID(ctx, claims.UserID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

// Profile returns the user together with their preferences.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.PublicUser, domain.Preferences, error) {
	log := slogx.FromContext(ctx)

	user, err := s.userByID(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, domain.Preferences{}, err
	}

	prefs, err := s.Store.Preferences().GetPreferences(ctx, user.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Accounts created before preferences existed fall back to defaults.
		prefs = domain.DefaultPreferences("", user.ID)
	case err != nil:
		log.Error("failed to load preferences", slog.Any("error", err))
		return domain.PublicUser{}, domain.Preferences{}, err
	}

	return user.Public(), prefs, nil
}

func (s *AuthService) userByID(ctx context.Context, userID string) (domain.User, error) {
	id, err := idx.Parse(userID)
	if err != nil {
		return domain.User{}, ErrUserNotFound
	}

	user, err := s.Store.Users().GetUserByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slogx.FromContext(ctx).Error("failed to load user", slog.Any("error", err))
		return domain.User{}, err
	}
	return user, nil
}
