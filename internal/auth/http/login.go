package http

import (
	"net/http"

	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log In
//	@Description	Checks email and password and starts a session.
//	@Description	Unknown emails and wrong passwords get the same 401 response.
//	@Description	Also served at /api/user-login and /api/auth/login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	plannersdk.AuthResponse	"success, user, token"
//	@Failure		400		{object}	plannersdk.APIError		"email or password missing"
//	@Failure		401		{object}	plannersdk.APIError		"invalid credentials"
//	@Failure		500		{object}	plannersdk.APIError		"internal error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req plannersdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, service.ErrCredentialsRequired)
		return
	}

	sess, err := h.AuthService.AuthenticateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, r, sess.Token, h.AuthService.TTL())
	httpx.WriteJSON(w, http.StatusOK, plannersdk.AuthResponse{
		Success: true,
		User:    toSDKUser(sess.User),
		Token:   sess.Token,
	})
}
