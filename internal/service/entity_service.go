package service

import (
	"context"

	"person_registry/internal/models"
	"person_registry/internal/repository"
)

// entityService implements Entity[T] over a repository and announces every
// committed mutation on the change feed.
type entityService[T any, P models.KeyedRef[T]] struct {
	repo repository.Crud[T]
	feed *ChangeFeed
	name string
}

func newEntityService[T any, P models.KeyedRef[T]](repo repository.Crud[T], feed *ChangeFeed, name string) *entityService[T, P] {
	return &entityService[T, P]{repo: repo, feed: feed, name: name}
}

func (s *entityService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *entityService[T, P]) Create(ctx context.Context, e *T) (*T, error) {
	created, err := s.repo.Add(ctx, e)
	if err != nil {
		return nil, err
	}
	s.feed.Publish(s.name, ActionCreated, P(created).GetID())
	return created, nil
}

func (s *entityService[T, P]) Update(ctx context.Context, e *T) (*T, error) {
	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	s.feed.Publish(s.name, ActionUpdated, P(updated).GetID())
	return updated, nil
}

func (s *entityService[T, P]) Delete(ctx context.Context, id int64) (*T, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.feed.Publish(s.name, ActionDeleted, id)
	return removed, nil
}

func (s *entityService[T, P]) GetPage(ctx context.Context, filter string, pageNumber int) (*models.Page[T], error) {
	return s.repo.GetPage(ctx, filter, pageNumber)
}
