package domain

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type View string

const (
	ViewCalendar View = "calendar"
	ViewPlanner  View = "planner"
)

type Weekday string

const (
	WeekStartSunday Weekday = "sunday"
	WeekStartMonday Weekday = "monday"
)

// Preferences are per-user UI settings, created with defaults at registration.
type Preferences struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	Theme                Theme     `json:"theme"`
	DefaultView          View      `json:"default_view"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	EmailReminders       bool      `json:"email_reminders"`
	StartWeekOn          Weekday   `json:"start_week_on"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultPreferences returns the settings every new account starts with.
func DefaultPreferences(id, userID string) Preferences {
	return Preferences{
		ID:                   id,
		UserID:               userID,
		Theme:                ThemeLight,
		DefaultView:          ViewCalendar,
		NotificationsEnabled: true,
		EmailReminders:       true,
		StartWeekOn:          WeekStartSunday,
	}
}
