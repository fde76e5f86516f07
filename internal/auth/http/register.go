package http

import (
	"net/http"

	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Account
//	@Description	Creates an account with default preferences and starts a session.
//	@Description	The session token is returned in the body and set as the sessionToken cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.RegisterRequest	true	"name, email, password, confirmPassword"
//	@Success		200		{object}	plannersdk.AuthResponse		"success, message, user, token"
//	@Failure		400		{object}	plannersdk.APIError			"missing field, password mismatch, weak password or invalid email"
//	@Failure		409		{object}	plannersdk.APIError			"email already registered"
//	@Failure		500		{object}	plannersdk.APIError			"internal error"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req plannersdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, service.ErrRegisterFieldsRequired)
		return
	}

	sess, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, r, sess.Token, h.AuthService.TTL())
	httpx.WriteJSON(w, http.StatusOK, plannersdk.AuthResponse{
		Success: true,
		Message: MsgRegistered,
		User:    toSDKUser(sess.User),
		Token:   sess.Token,
	})
}
