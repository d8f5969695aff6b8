package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"person_registry/internal/models"
	"person_registry/internal/storage"
)

// DefaultPageSize applies when the configured page size is missing or
// non-positive.
const DefaultPageSize = 10

// crudRepository implements Crud[T] over a storage collaborator. It owns no
// state beyond the store handle; every read reflects current storage.
type crudRepository[T any] struct {
	store    storage.Store[T]
	validate func(*T) error
	pageSize int
}

func newCrudRepository[T any](store storage.Store[T], validate func(*T) error, pageSize int) *crudRepository[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &crudRepository[T]{store: store, validate: validate, pageSize: pageSize}
}

func (r *crudRepository[T]) Get(ctx context.Context, id int64) (*T, error) {
	e, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("get", err)
	}
	return e, nil
}

func (r *crudRepository[T]) Add(ctx context.Context, e *T) (*T, error) {
	if err := r.validate(e); err != nil {
		return nil, err
	}
	if err := r.store.Insert(ctx, e); err != nil {
		return nil, storageErr("add", err)
	}
	return e, nil
}

// Update overwrites the record matching e's identifier. A missing record is
// NotFound; Update never inserts, even when the store would allow it.
func (r *crudRepository[T]) Update(ctx context.Context, e *T) (*T, error) {
	if err := r.validate(e); err != nil {
		return nil, err
	}
	rows, err := r.store.Update(ctx, e)
	if err != nil {
		return nil, storageErr("update", err)
	}
	if rows == 0 {
		return nil, models.ErrNotFound
	}
	return e, nil
}

// Delete removes the record and returns it as it existed immediately before
// removal. A concurrent delete between the read and the write surfaces as
// NotFound.
func (r *crudRepository[T]) Delete(ctx context.Context, id int64) (*T, error) {
	e, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("delete", err)
	}
	rows, err := r.store.Delete(ctx, id)
	if err != nil {
		return nil, storageErr("delete", err)
	}
	if rows == 0 {
		return nil, models.ErrNotFound
	}
	return e, nil
}

// GetPage is the paged query engine: it validates the page number, computes
// skip/take, and wraps the store's result in a page envelope. Pages past the
// end return empty results with the true total.
func (r *crudRepository[T]) GetPage(ctx context.Context, filter string, pageNumber int) (*models.Page[T], error) {
	if pageNumber < 1 {
		return nil, fmt.Errorf("%w: page number %d, must be >= 1", models.ErrInvalidArgument, pageNumber)
	}

	q := storage.PageQuery{
		Search: strings.TrimSpace(filter),
		Offset: (pageNumber - 1) * r.pageSize,
		Limit:  r.pageSize,
	}
	items, total, err := r.store.FindPage(ctx, q)
	if err != nil {
		return nil, storageErr("get page", err)
	}

	return &models.Page[T]{
		Results:    items,
		PageNumber: pageNumber,
		PageSize:   r.pageSize,
		TotalCount: total,
	}, nil
}

// storageErr maps collaborator failures onto the error kinds of
// internal/models. Anything that is not a missing row or a unique-key
// violation is treated as transient and eligible for caller retry.
func storageErr(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, models.ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %v", op, models.ErrTransientStorage, err)
	}
}

// isUniqueViolation detects SQLite unique-constraint failures. Both drivers
// behind sqliteshim surface the text "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
