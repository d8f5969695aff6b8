package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	"person_registry/internal/models"
)

// MemoryStore is the map-backed Store used in tests. It satisfies the same
// contract as BunStore: identifiers assigned on insert, sql.ErrNoRows for
// missing rows, id-ascending page order. Entities are stored and returned
// by value, so callers never alias the stored copy.
type MemoryStore[T any, P models.KeyedRef[T]] struct {
	mu           sync.RWMutex
	nextID       int64
	items        map[int64]T
	fields       FieldSet[T]
	searchFields []string
}

// NewMemoryStore builds an empty store. fields maps column names to
// extractors; searchFields is the subset FindPage matches a term against.
func NewMemoryStore[T any, P models.KeyedRef[T]](fields FieldSet[T], searchFields ...string) *MemoryStore[T, P] {
	return &MemoryStore[T, P]{
		items:        make(map[int64]T),
		fields:       fields,
		searchFields: searchFields,
	}
}

func (s *MemoryStore[T, P]) Insert(_ context.Context, e *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	P(e).SetID(s.nextID)
	s.items[s.nextID] = *e
	return nil
}

func (s *MemoryStore[T, P]) Update(_ context.Context, e *T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := P(e).GetID()
	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	s.items[id] = *e
	return 1, nil
}

func (s *MemoryStore[T, P]) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	delete(s.items, id)
	return 1, nil
}

func (s *MemoryStore[T, P]) FindByID(_ context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (s *MemoryStore[T, P]) FindOne(_ context.Context, field, value string) (*T, error) {
	extract, ok := s.fields[field]
	if !ok {
		return nil, fmt.Errorf("memory store: unknown field %q", field)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		e := s.items[id]
		if extract(&e) == value {
			return &e, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *MemoryStore[T, P]) FindPage(_ context.Context, q PageQuery) ([]*T, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0, len(s.items))
	for _, id := range s.sortedIDs() {
		e := s.items[id]
		if s.matches(&e, q.Search) {
			matched = append(matched, e)
		}
	}

	total := len(matched)
	lo := q.Offset
	if lo > total {
		lo = total
	}
	hi := lo + q.Limit
	if q.Limit <= 0 || hi > total {
		hi = total
	}

	page := make([]*T, 0, hi-lo)
	for i := lo; i < hi; i++ {
		e := matched[i]
		page = append(page, &e)
	}
	return page, total, nil
}

// sortedIDs returns all identifiers ascending. Callers must hold the lock.
func (s *MemoryStore[T, P]) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *MemoryStore[T, P]) matches(e *T, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" || len(s.searchFields) == 0 {
		return true
	}
	term = strings.ToLower(term)
	for _, name := range s.searchFields {
		extract, ok := s.fields[name]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(extract(e)), term) {
			return true
		}
	}
	return false
}
