package storage

import (
	"context"
	"strings"

	"github.com/uptrace/bun"
)

// BunStore persists entities of one type through Bun. Search terms are
// matched against the configured columns with lower() LIKE.
type BunStore[T any] struct {
	db            *bun.DB
	searchColumns []string
}

var _ Store[struct{}] = (*BunStore[struct{}])(nil)

// NewBunStore builds a store for T. searchColumns are the text columns
// FindPage matches a search term against.
func NewBunStore[T any](db *bun.DB, searchColumns ...string) *BunStore[T] {
	return &BunStore[T]{db: db, searchColumns: searchColumns}
}

func (s *BunStore[T]) Insert(ctx context.Context, e *T) error {
	_, err := s.db.NewInsert().Model(e).Exec(ctx)
	return err
}

func (s *BunStore[T]) Update(ctx context.Context, e *T) (int64, error) {
	res, err := s.db.NewUpdate().Model(e).WherePK().Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *BunStore[T]) Delete(ctx context.Context, id int64) (int64, error) {
	var e T
	res, err := s.db.NewDelete().Model(&e).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *BunStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var e T
	if err := s.db.NewSelect().Model(&e).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *BunStore[T]) FindOne(ctx context.Context, field, value string) (*T, error) {
	var e T
	err := s.db.NewSelect().
		Model(&e).
		Where("? = ?", bun.Ident(field), value).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *BunStore[T]) FindPage(ctx context.Context, q PageQuery) ([]*T, int, error) {
	var entities []*T
	query := s.applySearch(s.db.NewSelect().Model(&entities), q.Search)

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*T{}, 0, nil
	}

	err = query.
		Order("id ASC").
		Offset(q.Offset).
		Limit(q.Limit).
		Scan(ctx)
	if err != nil {
		return nil, 0, err
	}
	if entities == nil {
		entities = []*T{}
	}
	return entities, total, nil
}

func (s *BunStore[T]) applySearch(query *bun.SelectQuery, term string) *bun.SelectQuery {
	term = strings.TrimSpace(term)
	if term == "" || len(s.searchColumns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(term) + "%"
	return query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, col := range s.searchColumns {
			q = q.WhereOr("lower(?) LIKE ?", bun.Ident(col), pattern)
		}
		return q
	})
}
