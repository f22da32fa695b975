package repository

import (
	"context"
	"errors"

	"user-directory/internal/domain/entity"
)

// ErrNotFound signals that no durable record exists for the identifier.
// Callers must not confuse it with transient store failures, which are
// returned as distinct (wrapped) errors.
var ErrNotFound = errors.New("user not found")

// UserRepository is the durable store contract for user records.
// Save is an idempotent upsert (last-write-wins on the stored fields).
// The repository never retries internally; retry policy belongs to callers.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
