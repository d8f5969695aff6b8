package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"person_registry/internal/models"
	"person_registry/internal/storage"
)

// userRepository layers username semantics over the generic repository.
type userRepository struct {
	*crudRepository[models.User]
}

var _ Users = (*userRepository)(nil)

func newUserRepository(store storage.Store[models.User], pageSize int) *userRepository {
	return &userRepository{newCrudRepository(store, validateUser, pageSize)}
}

// Add enforces username uniqueness up front; the store's unique index is
// the backstop for concurrent registrations.
func (r *userRepository) Add(ctx context.Context, u *models.User) (*models.User, error) {
	if err := validateUser(u); err != nil {
		return nil, err
	}
	_, err := r.store.FindOne(ctx, "username", u.Username)
	switch {
	case err == nil:
		return nil, fmt.Errorf("username %q already taken: %w", u.Username, models.ErrConflict)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, storageErr("add user", err)
	}
	return r.crudRepository.Add(ctx, u)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := r.store.FindOne(ctx, "username", username)
	if err != nil {
		return nil, storageErr("get user by username", err)
	}
	return u, nil
}
