package service

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/planner/pkg/cryptox"
	"github.com/aussiebroadwan/planner/pkg/jwtx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type sentLink struct {
	userID string
	link   string
}

type recordingNotifier struct {
	mu    sync.Mutex
	links []sentLink
}

func (n *recordingNotifier) SendResetLink(_ context.Context, user domain.User, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.links = append(n.links, sentLink{userID: user.ID, link: link})
	return nil
}

type harness struct {
	store    *sqlite.Store
	auth     *AuthService
	reset    *PasswordResetService
	notifier *recordingNotifier
	metrics  *Metrics

	mu  sync.Mutex
	now time.Time
}

func (h *harness) clock() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.now
}

func (h *harness) advance(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = h.now.Add(d)
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	hasher := cryptox.NewBcryptHasher(bcrypt.MinCost)
	h := &harness{
		store:    s,
		notifier: &recordingNotifier{},
		metrics:  NewMetrics(prometheus.NewRegistry()),
		now:      time.Now(),
	}
	h.auth = &AuthService{
		Store:    s,
		Hasher:   hasher,
		Signer:   signer,
		Verifier: signer.Verifier(),
		Metrics:  h.metrics,
	}
	h.reset = &PasswordResetService{
		Store:    s,
		Hasher:   hasher,
		Notifier: h.notifier,
		AppURL:   "http://localhost:3000/",
		Metrics:  h.metrics,
		Clock:    h.clock,
	}
	return h
}

func (h *harness) register(t *testing.T, email, password string) Session {
	t.Helper()
	sess, err := h.auth.Register(context.Background(), RegisterInput{
		Name:            "Ana",
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
	return sess
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	sess, err := h.auth.Register(ctx, RegisterInput{
		Name:            "  Ana  ",
		Email:           "  Ana@X.com ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	require.Equal(t, "Ana", sess.User.Name)
	require.Equal(t, "ana@x.com", sess.User.Email)
	require.Equal(t, domain.DefaultTimezone, sess.User.Timezone)
	require.True(t, sess.User.IsActive)

	claims, err := h.auth.VerifySession(sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, claims.UserID)
	require.Equal(t, "ana@x.com", claims.Email)

	stored, err := h.store.Users().GetUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", stored.PasswordHash)

	prefs, err := h.store.Preferences().GetPreferences(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeLight, prefs.Theme)

	require.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Registrations.WithLabelValues(ResultSuccess)))
}

func TestRegister_Rejects(t *testing.T) {
	h := newHarness(t)
	h.register(t, "taken@x.com", "secret1")

	tests := []struct {
		name string
		in   RegisterInput
		want error
		kind error
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1"}, ErrRegisterFieldsRequired, ErrValidation},
		{"blank name", RegisterInput{Name: "  ", Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1"}, ErrRegisterFieldsRequired, ErrValidation},
		{"missing confirmation", RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"}, ErrRegisterFieldsRequired, ErrValidation},
		{"mismatch", RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret2"}, ErrPasswordMismatch, ErrValidation},
		{"too short", RegisterInput{Name: "A", Email: "a@x.com", Password: "12345", ConfirmPassword: "12345"}, ErrPasswordTooShort, ErrValidation},
		{"too long", RegisterInput{Name: "A", Email: "a@x.com", Password: longPassword(), ConfirmPassword: longPassword()}, ErrPasswordTooLong, ErrValidation},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret1", ConfirmPassword: "secret1"}, ErrInvalidEmail, ErrValidation},
		{"email without tld", RegisterInput{Name: "A", Email: "a@x", Password: "secret1", ConfirmPassword: "secret1"}, ErrInvalidEmail, ErrValidation},
		{"duplicate email", RegisterInput{Name: "A", Email: "TAKEN@x.com", Password: "secret1", ConfirmPassword: "secret1"}, ErrEmailTaken, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.auth.Register(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func longPassword() string {
	b := make([]byte, cryptox.MaxPasswordBytes+1)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

func TestAuthenticateUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	registered := h.register(t, "ana@x.com", "secret1")

	t.Run("correct password", func(t *testing.T) {
		sess, err := h.auth.AuthenticateUser(ctx, " ANA@x.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, sess.User.ID)

		claims, err := h.auth.VerifySession(sess.Token)
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, claims.UserID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPw := h.auth.AuthenticateUser(ctx, "ana@x.com", "nope-nope")
		_, unknown := h.auth.AuthenticateUser(ctx, "ghost@x.com", "secret1")

		require.ErrorIs(t, wrongPw, ErrInvalidCredentials)
		require.ErrorIs(t, unknown, ErrInvalidCredentials)
		require.Equal(t, wrongPw.Error(), unknown.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := h.auth.AuthenticateUser(ctx, "", "secret1")
		require.ErrorIs(t, err, ErrCredentialsRequired)
		_, err = h.auth.AuthenticateUser(ctx, "ana@x.com", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	require.Equal(t, 2.0, testutil.ToFloat64(h.metrics.Logins.WithLabelValues(ResultInvalidCredentials)))
}

func TestAuthenticateUser_LongPasswordSuffix(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pw := strings.Repeat("a", cryptox.MaxPasswordBytes)
	h.register(t, "ana@x.com", pw)

	_, err := h.auth.AuthenticateUser(ctx, "ana@x.com", pw)
	require.NoError(t, err)

	_, err = h.auth.AuthenticateUser(ctx, "ana@x.com", pw+"WRONG-SUFFIX")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = h.auth.AuthenticateUser(ctx, "ghost@x.com", pw+"WRONG-SUFFIX")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.Equal(t, 2.0, testutil.ToFloat64(h.metrics.Logins.WithLabelValues(ResultInvalidCredentials)))
}

func TestCurrentUserAndProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess := h.register(t, "ana@x.com", "secret1")

	u, err := h.auth.CurrentUser(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, u.ID)

	user, prefs, err := h.auth.Profile(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Equal(t, "ana@x.com", user.Email)
	require.Equal(t, domain.ViewCalendar, prefs.DefaultView)

	_, err = h.auth.CurrentUser(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidSession)
	require.ErrorIs(t, err, ErrAuthentication)

	_, err = h.auth.CurrentUser(ctx, "")
	require.ErrorIs(t, err, ErrInvalidSession)

	require.NoError(t, h.store.Users().DeactivateUser(ctx, sess.User.ID))
	_, err = h.auth.CurrentUser(ctx, sess.Token)
	require.ErrorIs(t, err, ErrUserNotFound)
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = h.auth.Profile(ctx, "not-a-ulid")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotPassword(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess := h.register(t, "ana@x.com", "secret1")

	unknown, err := h.reset.ForgotPassword(ctx, "ghost@x.com")
	require.NoError(t, err)
	require.Empty(t, unknown.Token)
	require.Empty(t, h.notifier.links)

	known, err := h.reset.ForgotPassword(ctx, "Ana@x.com")
	require.NoError(t, err)
	require.Len(t, known.Token, 64)
	require.Equal(t, "http://localhost:3000/reset-password?token="+known.Token, known.Link)
	require.Len(t, h.notifier.links, 1)
	require.Equal(t, sess.User.ID, h.notifier.links[0].userID)

	stored, err := h.store.PasswordResets().GetPasswordResetToken(ctx, cryptox.FingerprintToken(known.Token))
	require.NoError(t, err)
	require.WithinDuration(t, h.clock().Add(DefaultResetTokenTTL), stored.ExpiresAt, time.Second)

	_, err = h.reset.ForgotPassword(ctx, "  ")
	require.ErrorIs(t, err, ErrEmailRequired)

	require.Equal(t, 1.0, testutil.ToFloat64(h.metrics.PasswordResets.WithLabelValues(StageRequest, ResultUnknownEmail)))
	require.Equal(t, 1.0, testutil.ToFloat64(h.metrics.PasswordResets.WithLabelValues(StageRequest, ResultSuccess)))
}

func TestResetPassword_SingleUse(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "ana@x.com", "secret1")

	issued, err := h.reset.ForgotPassword(ctx, "ana@x.com")
	require.NoError(t, err)

	require.NoError(t, h.reset.ResetPassword(ctx, issued.Token, "novasenha"))

	err = h.reset.ResetPassword(ctx, issued.Token, "outrasenha")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = h.auth.AuthenticateUser(ctx, "ana@x.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = h.auth.AuthenticateUser(ctx, "ana@x.com", "novasenha")
	require.NoError(t, err)
}

func TestResetPassword_Expired(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "ana@x.com", "secret1")

	issued, err := h.reset.ForgotPassword(ctx, "ana@x.com")
	require.NoError(t, err)

	h.advance(DefaultResetTokenTTL + time.Second)

	err = h.reset.ResetPassword(ctx, issued.Token, "novasenha")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = h.auth.AuthenticateUser(ctx, "ana@x.com", "secret1")
	require.NoError(t, err, "password unchanged")
}

func TestResetPassword_NewRequestInvalidatesOld(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "ana@x.com", "secret1")

	first, err := h.reset.ForgotPassword(ctx, "ana@x.com")
	require.NoError(t, err)
	second, err := h.reset.ForgotPassword(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	require.ErrorIs(t, h.reset.ResetPassword(ctx, first.Token, "novasenha"), ErrInvalidToken)
	require.NoError(t, h.reset.ResetPassword(ctx, second.Token, "novasenha"))
}

func TestResetPassword_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		token, pass string
		want        error
	}{
		{"missing token", "", "novasenha", ErrResetFieldsRequired},
		{"missing password", "abc", "", ErrResetFieldsRequired},
		{"short password", "abc", "123", ErrPasswordTooShort},
		{"unknown token", "abc", "novasenha", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, h.reset.ResetPassword(ctx, tt.token, tt.pass), tt.want)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"six ascii", "abcdef", nil},
		{"five ascii", "abcde", ErrPasswordTooShort},
		{"three astral characters", "😀😀😀", nil},
		{"five accented", "ééééé", ErrPasswordTooShort},
		{"72 bytes", strings.Repeat("a", cryptox.MaxPasswordBytes), nil},
		{"73 bytes", strings.Repeat("a", cryptox.MaxPasswordBytes+1), ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
