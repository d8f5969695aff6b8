package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"person_registry/internal/auth"
	"person_registry/internal/models"
	"person_registry/internal/repository"
)

// dummyHash is a valid bcrypt hash of an unused input. Authenticate verifies
// against it when the username is unknown so the failure path costs the same
// as a wrong password and does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService orchestrates the credential verifier, the token issuer, and
// the user repository.
type AuthService struct {
	users  repository.Users
	issuer *auth.TokenIssuer
}

func NewAuthService(users repository.Users, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// SignUp hashes the supplied plaintext and persists the user. The plaintext
// is never stored or logged; a taken username is a Conflict.
func (s *AuthService) SignUp(ctx context.Context, u *models.User) (*models.User, error) {
	if strings.TrimSpace(u.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if err := hashInto(u); err != nil {
		return nil, err
	}
	return s.users.Add(ctx, u)
}

// Authenticate looks the user up, verifies the password, and issues a
// token. Unknown username and wrong password surface the same
// ErrInvalidCredentials. On success the returned copy carries the token and
// no password hash.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, models.ErrNotFound):
		auth.VerifyPassword(dummyHash, password)
		return nil, models.ErrInvalidCredentials
	case err != nil:
		return nil, err
	}

	if !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	out := *u
	out.PasswordHash = ""
	out.Token = token
	return &out, nil
}

// ParseToken validates a bearer token and returns the user id it asserts.
func (s *AuthService) ParseToken(accessToken string) (int64, error) {
	return s.issuer.Parse(accessToken)
}
