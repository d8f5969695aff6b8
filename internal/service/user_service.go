package service

import (
	"context"
	"fmt"
	"strings"

	"person_registry/internal/auth"
	"person_registry/internal/models"
	"person_registry/internal/repository"
)

// userService keeps password handling in one place: plaintext supplied on
// create or update is hashed and dropped before anything reaches the
// repository.
type userService struct {
	*entityService[models.User, *models.User]
}

func newUserService(repo repository.Users, feed *ChangeFeed) *userService {
	return &userService{newEntityService[models.User, *models.User](repo, feed, "user")}
}

func (s *userService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if err := hashInto(u); err != nil {
		return nil, err
	}
	return s.entityService.Create(ctx, u)
}

// Update re-hashes when a new plaintext password is supplied; otherwise the
// stored hash is carried over so a whole-record replace cannot clear it.
func (s *userService) Update(ctx context.Context, u *models.User) (*models.User, error) {
	switch {
	case u.Password != "":
		if err := hashInto(u); err != nil {
			return nil, err
		}
	case u.PasswordHash == "":
		existing, err := s.repo.Get(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = existing.PasswordHash
	}
	return s.entityService.Update(ctx, u)
}

// hashInto replaces the transient plaintext with its bcrypt hash.
func hashInto(u *models.User) error {
	if strings.TrimSpace(u.Password) == "" {
		return fmt.Errorf("%w: password is required", models.ErrValidation)
	}
	hash, err := auth.HashPassword(u.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	u.PasswordHash = hash
	u.Password = ""
	return nil
}
