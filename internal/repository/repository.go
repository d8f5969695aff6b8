package repository

import (
	"context"

	"github.com/uptrace/bun"

	"person_registry/internal/models"
	"person_registry/internal/storage"
)

// Crud is the contract exposed for every entity type: the four CRUD
// operations plus paged listing.
type Crud[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Add(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
	GetPage(ctx context.Context, filter string, pageNumber int) (*models.Page[T], error)
}

// Users adds username lookup on top of the generic contract.
type Users interface {
	Crud[models.User]
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Repository struct {
	People  Crud[models.Person]
	Uploads Crud[models.Upload]
	Users   Users
}

// NewRepository wires Bun-backed stores for every entity collection.
func NewRepository(db *bun.DB, pageSize int) *Repository {
	return &Repository{
		People: newCrudRepository[models.Person](
			storage.NewBunStore[models.Person](db, "first_name", "last_name"),
			validatePerson, pageSize),
		Uploads: newCrudRepository[models.Upload](
			storage.NewBunStore[models.Upload](db, "file_name"),
			validateUpload, pageSize),
		Users: newUserRepository(
			storage.NewBunStore[models.User](db, "username", "first_name", "last_name"),
			pageSize),
	}
}

// NewMemoryRepository wires map-backed stores satisfying the same contract.
// Used by tests that exercise repository behavior without a database.
func NewMemoryRepository(pageSize int) *Repository {
	return &Repository{
		People: newCrudRepository[models.Person](
			storage.NewMemoryStore[models.Person, *models.Person](personFields(), "first_name", "last_name"),
			validatePerson, pageSize),
		Uploads: newCrudRepository[models.Upload](
			storage.NewMemoryStore[models.Upload, *models.Upload](uploadFields(), "file_name"),
			validateUpload, pageSize),
		Users: newUserRepository(
			storage.NewMemoryStore[models.User, *models.User](userFields(), "username", "first_name", "last_name"),
			pageSize),
	}
}
