package sqlite

import (
	"context"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite/gen"
)

type preferencesRepo struct {
	q *gen.Queries
}

func (r *preferencesRepo) CreatePreferences(ctx context.Context, p domain.Preferences) error {
	err := r.q.CreatePreferences(ctx, gen.CreatePreferencesParams{
		ID:                   p.ID,
		UserID:               p.UserID,
		Theme:                string(p.Theme),
		DefaultView:          string(p.DefaultView),
		NotificationsEnabled: p.NotificationsEnabled,
		EmailReminders:       p.EmailReminders,
		StartWeekOn:          string(p.StartWeekOn),
		CreatedAt:            orNow(p.CreatedAt),
		UpdatedAt:            orNow(p.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *preferencesRepo) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	row, err := r.q.GetPreferencesByUserID(ctx, userID)
	if err != nil {
		return domain.Preferences{}, mapNotFound(err)
	}
	return mapPreferences(row), nil
}
