//go:build e2e

package planner_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/planner/pkg/plannersdk"
)

// TestAnaScenario walks the whole account lifecycle against a running
// container.
func TestAnaScenario(t *testing.T) {
	baseURL, cleanup := setupPlannerContainer(t)
	defer cleanup()

	client := plannersdk.NewSDKClient(baseURL)
	ctx := t.Context()

	reg := registerAna(t, client)
	require.Equal(t, "ana@example.com", reg.User.Email)
	require.NotEmpty(t, reg.Token)

	_, err := client.Login(ctx, "ana@example.com", "wrong")
	assertAPIError(t, err, http.StatusUnauthorized, "Credenciais inválidas")

	fp, err := client.ForgotPassword(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, fp.ResetToken)
	require.Equal(t, "http://planner.test/reset-password?token="+fp.ResetToken, fp.ResetLink)

	require.NoError(t, client.ResetPassword(ctx, fp.ResetToken, "novasenha"))

	err = client.ResetPassword(ctx, fp.ResetToken, "outrasenha")
	assertAPIError(t, err, http.StatusBadRequest, "Token inválido ou expirado")

	login, err := client.Login(ctx, "ana@example.com", "novasenha")
	require.NoError(t, err)

	me, err := client.Me(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, me.User.ID)
	require.Equal(t, "light", me.Preferences.Theme)

	require.NoError(t, client.Logout(ctx))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupPlannerContainer(t)
	defer cleanup()

	client := plannersdk.NewSDKClient(baseURL)
	registerAna(t, client)

	_, err := client.Register(t.Context(), plannersdk.RegisterRequest{
		Name:            "Outra Ana",
		Email:           "ANA@example.com",
		Password:        "secret2",
		ConfirmPassword: "secret2",
	})
	assertAPIError(t, err, http.StatusConflict, "Este email já está cadastrado")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	baseURL, cleanup := setupPlannerContainer(t)
	defer cleanup()

	client := plannersdk.NewSDKClient(baseURL)

	fp, err := client.ForgotPassword(t.Context(), "nobody@example.com")
	require.NoError(t, err)
	require.True(t, fp.Success)
	require.Empty(t, fp.ResetToken)
}

func TestMe_Unauthorized(t *testing.T) {
	baseURL, cleanup := setupPlannerContainer(t)
	defer cleanup()

	client := plannersdk.NewSDKClient(baseURL)

	_, err := client.Me(t.Context(), "not-a-token")
	assertAPIError(t, err, http.StatusUnauthorized, "Não autorizado")
}

func TestGate_RedirectsAnonymousVisitor(t *testing.T) {
	baseURL, cleanup := setupPlannerContainer(t)
	defer cleanup()

	client := plannersdk.NewSDKClient(baseURL)
	resp, err := client.HTTPClient.Get(baseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}
