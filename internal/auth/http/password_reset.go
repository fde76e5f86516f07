package http

import (
	"net/http"

	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
)

type ForgotPasswordHandler struct {
	ResetService *service.PasswordResetService

	// EchoToken returns the raw token and link in the response body. Only
	// enabled in development, where there is no mail delivery.
	EchoToken bool
}

// ServeHTTP godoc
//
//	@Summary		Request Password Reset
//	@Description	Issues a one-hour reset token for the account, replacing any earlier one.
//	@Description	The response is the same whether or not the email is registered.
//	@Description	In development mode resetToken and resetLink are included for known emails.
//	@Tags			Password Reset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.ForgotPasswordRequest	true	"email"
//	@Success		200		{object}	plannersdk.ForgotPasswordResponse	"success, message"
//	@Failure		400		{object}	plannersdk.APIError					"email missing"
//	@Failure		500		{object}	plannersdk.APIError					"internal error"
//	@Router			/api/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req plannersdk.ForgotPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, service.ErrEmailRequired)
		return
	}

	issued, err := h.ResetService.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := plannersdk.ForgotPasswordResponse{
		Success: true,
		Message: MsgResetRequested,
	}
	if h.EchoToken {
		resp.ResetToken = issued.Token
		resp.ResetLink = issued.Link
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type ResetPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password
//	@Description	Consumes a reset token and sets a new password. Tokens work once.
//	@Description	Absent, used and expired tokens get the same response.
//	@Tags			Password Reset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.ResetPasswordRequest	true	"token, newPassword"
//	@Success		200		{object}	plannersdk.MessageResponse		"success, message"
//	@Failure		400		{object}	plannersdk.APIError				"missing field, weak password, or invalid or expired token"
//	@Failure		500		{object}	plannersdk.APIError				"internal error"
//	@Router			/api/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req plannersdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, service.ErrResetFieldsRequired)
		return
	}

	if err := h.ResetService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, plannersdk.MessageResponse{
		Success: true,
		Message: MsgPasswordReset,
	})
}
