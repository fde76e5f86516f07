package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
)

type preferencesRepo struct {
	q querier
}

func (r *preferencesRepo) CreatePreferences(ctx context.Context, p domain.Preferences) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	_, err := r.q.Exec(ctx,
		`INSERT INTO user_preferences (
		     id, user_id, theme, default_view, notifications_enabled, email_reminders, start_week_on, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, string(p.Theme), string(p.DefaultView),
		p.NotificationsEnabled, p.EmailReminders, string(p.StartWeekOn),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(err, "create preferences")
	}
	return nil
}

func (r *preferencesRepo) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	var (
		p                        domain.Preferences
		theme, view, startWeekOn string
	)
	err := r.q.QueryRow(ctx,
		`SELECT id, user_id, theme, default_view, notifications_enabled, email_reminders, start_week_on, created_at, updated_at
		 FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(
		&p.ID, &p.UserID, &theme, &view,
		&p.NotificationsEnabled, &p.EmailReminders, &startWeekOn,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Preferences{}, mapNotFound(err, "get preferences")
	}

	p.Theme = domain.Theme(theme)
	p.DefaultView = domain.View(view)
	p.StartWeekOn = domain.Weekday(startWeekOn)
	return p, nil
}
