package domain

import "time"

// DefaultTimezone is assigned to every account at registration.
const DefaultTimezone = "America/Sao_Paulo"

// User is the full account record. PasswordHash never leaves the store and
// service layers; anything handed to a client goes through Public().
type User struct {
	ID           string
	Name         string
	Email        string // trimmed, lower-cased
	PasswordHash string // bcrypt encoded
	AvatarURL    *string
	Timezone     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Timezone  string    `json:"timezone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Timezone:  u.Timezone,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
