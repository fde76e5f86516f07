package plannersdk

import "time"

// ============================================================================
// Requests
// ============================================================================

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Responses
// ============================================================================

// User is the public view of an account. It never carries the password hash.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Timezone  string    `json:"timezone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Preferences struct {
	Theme                string `json:"theme"`
	DefaultView          string `json:"default_view"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	EmailReminders       bool   `json:"email_reminders"`
	StartWeekOn          string `json:"start_week_on"`
}

// AuthResponse is returned by register and login. Message is only set by
// register.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// MessageResponse is the generic {success, message} body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ForgotPasswordResponse carries ResetToken and ResetLink only when the
// server runs in development mode and the email matched an account.
type ForgotPasswordResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
	ResetLink  string `json:"resetLink,omitempty"`
}

type MeResponse struct {
	Success     bool        `json:"success"`
	User        User        `json:"user"`
	Preferences Preferences `json:"preferences"`
}

// APIHealthResponse is the body of /api/health.
type APIHealthResponse struct {
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Database  string     `json:"database,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// HealthResponse is the body of /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
