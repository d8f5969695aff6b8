package service

import (
	"context"

	"person_registry/internal/auth"
	"person_registry/internal/models"
	"person_registry/internal/repository"
)

// Entity exposes one entity collection to the HTTP layer: the repository
// contract plus change-feed publication.
type Entity[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
	GetPage(ctx context.Context, filter string, pageNumber int) (*models.Page[T], error)
}

// Authorization implements the credential flow: registration, the
// authenticate state machine, and token validation for the middleware.
type Authorization interface {
	SignUp(ctx context.Context, u *models.User) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	ParseToken(accessToken string) (int64, error)
}

// Service aggregates all sub-services.
type Service struct {
	People  Entity[models.Person]
	Uploads Entity[models.Upload]
	Users   Entity[models.User]
	Authorization
	Feed *ChangeFeed
}

// NewService wires the repository layer into concrete services sharing one
// change feed.
func NewService(repos *repository.Repository, issuer *auth.TokenIssuer) *Service {
	feed := NewChangeFeed()
	return &Service{
		People:        newEntityService[models.Person, *models.Person](repos.People, feed, "person"),
		Uploads:       newEntityService[models.Upload, *models.Upload](repos.Uploads, feed, "upload"),
		Users:         newUserService(repos.Users, feed),
		Authorization: NewAuthService(repos.Users, issuer),
		Feed:          feed,
	}
}
