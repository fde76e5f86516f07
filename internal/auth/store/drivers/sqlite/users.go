package sqlite

import (
	"context"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	created := orNow(u.CreatedAt)
	updated := orNow(u.UpdatedAt)

	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		AvatarUrl:    mapOptionalString(u.AvatarURL),
		Timezone:     u.Timezone,
		IsActive:     u.IsActive,
		CreatedAt:    created,
		UpdatedAt:    updated,
	})
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	u.CreatedAt = created
	u.UpdatedAt = updated
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetActiveUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetActiveUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	n, err := r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: newHash,
		UpdatedAt:    nowUTC(),
		ID:           userID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeactivateUser(ctx context.Context, userID string) error {
	n, err := r.q.DeactivateUser(ctx, gen.DeactivateUserParams{
		UpdatedAt: nowUTC(),
		ID:        userID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
