package http

import (
	"net/http"

	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
)

// MeHandler runs behind httpx.RequireSession, which has already verified the
// token and put its claims on the context.
type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current User
//	@Description	Returns the user behind the session together with their preferences.
//	@Description	The session comes from the sessionToken cookie or an Authorization Bearer header.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	plannersdk.MeResponse	"success, user, preferences"
//	@Failure		401	{object}	plannersdk.APIError		"missing, invalid or expired session"
//	@Failure		404	{object}	plannersdk.APIError		"user no longer exists"
//	@Failure		500	{object}	plannersdk.APIError		"internal error"
//	@Router			/api/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
		writeError(w, r, service.ErrInvalidSession)
		return
	}

	user, prefs, err := h.AuthService.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, plannersdk.MeResponse{
		Success:     true,
		User:        toSDKUser(user),
		Preferences: toSDKPreferences(prefs),
	})
}

// LogoutHandler godoc
//
//	@Summary		Log Out
//	@Description	Clears the session cookie. Tokens are not revocable and stay valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	plannersdk.MessageResponse	"success, message"
//	@Router			/api/logout [post].
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, r)
	httpx.WriteJSON(w, http.StatusOK, plannersdk.MessageResponse{
		Success: true,
		Message: MsgLoggedOut,
	})
}
