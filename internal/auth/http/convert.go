package http

import (
	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
)

func toSDKUser(u domain.PublicUser) plannersdk.User {
	return plannersdk.User{
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

func toSDKPreferences(p domain.Preferences) plannersdk.Preferences {
	return plannersdk.Preferences{
		Theme:                string(p.Theme),
		DefaultView:          string(p.DefaultView),
		NotificationsEnabled: p.NotificationsEnabled,
		EmailReminders:       p.EmailReminders,
		StartWeekOn:          string(p.StartWeekOn),
	}
}
