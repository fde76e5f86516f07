package plannersdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns its first session.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	resp, err := c.postJSON(ctx, "/api/register", req, nil)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.postJSON(ctx, "/api/login", LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword asks for a reset link.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	resp, err := c.postJSON(ctx, "/api/forgot-password", ForgotPasswordRequest{Email: email}, nil)
	if err != nil {
		return nil, err
	}

	var out ForgotPasswordResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password using a reset token.
func (c *SDKClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	resp, err := c.postJSON(ctx, "/api/reset-password", ResetPasswordRequest{Token: token, NewPassword: newPassword}, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// Me returns the user behind a session token.
func (c *SDKClient) Me(ctx context.Context, token string) (*MeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/me", nil, bearer(token))
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout asks the server to clear the session cookie. The token itself
// stays valid until it expires.
func (c *SDKClient) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/logout", nil, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
