package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-directory/internal/domain/entity"
	"user-directory/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save upserts the full record keyed by identifier. Conflicting upserts for
// the same id are serialized by Postgres; last write wins on stored fields.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now().UTC()

	var reason *int16
	if u.ExclusionReason != nil {
		v := int16(*u.ExclusionReason)
		reason = &v
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, display_name, email_address, exclusion_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    email_address = EXCLUDED.email_address,
		    exclusion_reason = EXCLUDED.exclusion_reason,
		    updated_at = EXCLUDED.updated_at
	`, u.ID, u.DisplayName, u.EmailAddress, reason, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save user %s: %w", u.ID, err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	var reason *int16

	row := r.pool.QueryRow(ctx, `
		SELECT id, display_name, email_address, exclusion_reason, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.DisplayName, &u.EmailAddress, &reason,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	if reason != nil {
		code := entity.ExclusionReason(*reason)
		u.ExclusionReason = &code
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
