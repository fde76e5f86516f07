package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/domain"
	"github.com/aussiebroadwan/planner/internal/auth/store"
)

const userColumns = `id, name, email, password_hash, avatar_url, timezone, is_active, created_at, updated_at`

type usersRepo struct {
	q querier
}

func scanUser(row interface{ Scan(dest ...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.AvatarURL,
		&u.Timezone,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	row := r.q.QueryRow(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.PasswordHash, u.AvatarURL, u.Timezone, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapConstraint(err, "create user")
	}
	return created, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND is_active`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err, "get user by email")
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND is_active`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err, "get user by id")
	}
	return u, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3 AND is_active`,
		newHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return mapNotFound(err, "update password hash")
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeactivateUser(ctx context.Context, userID string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = $1 WHERE id = $2 AND is_active`,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return mapNotFound(err, "deactivate user")
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
