package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"person_registry/internal/models"
)

func newPersonMemStore() *MemoryStore[models.Person, *models.Person] {
	fields := FieldSet[models.Person]{
		"first_name": func(p *models.Person) string { return p.FirstName },
		"last_name":  func(p *models.Person) string { return p.LastName },
	}
	return NewMemoryStore[models.Person, *models.Person](fields, "first_name", "last_name")
}

func mustInsert(t *testing.T, s *MemoryStore[models.Person, *models.Person], first, last string) *models.Person {
	t.Helper()
	p := &models.Person{FirstName: first, LastName: last, PhoneNumber: "555 0100"}
	if err := s.Insert(context.Background(), p); err != nil {
		t.Fatalf("insert %s %s: %v", first, last, err)
	}
	return p
}

func TestMemoryStore_InsertAssignsSequentialIDs(t *testing.T) {
	s := newPersonMemStore()

	a := mustInsert(t, s, "Ada", "Lovelace")
	b := mustInsert(t, s, "Alan", "Turing")

	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestMemoryStore_FindByIDReturnsCopy(t *testing.T) {
	s := newPersonMemStore()
	ctx := context.Background()

	inserted := mustInsert(t, s, "Ada", "Lovelace")

	got, err := s.FindByID(ctx, inserted.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	got.FirstName = "Mutated"

	again, err := s.FindByID(ctx, inserted.ID)
	if err != nil {
		t.Fatalf("find again: %v", err)
	}
	if again.FirstName != "Ada" {
		t.Fatalf("stored copy was aliased: got %q", again.FirstName)
	}
}

func TestMemoryStore_MissingRowsSurfaceErrNoRows(t *testing.T) {
	s := newPersonMemStore()
	ctx := context.Background()

	if _, err := s.FindByID(ctx, 99); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("FindByID: expected sql.ErrNoRows, got %v", err)
	}
	if _, err := s.FindOne(ctx, "first_name", "Nobody"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("FindOne: expected sql.ErrNoRows, got %v", err)
	}
}

func TestMemoryStore_UpdateAndDeleteReportRowsAffected(t *testing.T) {
	s := newPersonMemStore()
	ctx := context.Background()

	p := mustInsert(t, s, "Ada", "Lovelace")

	p.LastName = "King"
	rows, err := s.Update(ctx, p)
	if err != nil || rows != 1 {
		t.Fatalf("update existing: rows=%d err=%v", rows, err)
	}

	missing := &models.Person{ID: 99, FirstName: "X", LastName: "Y", PhoneNumber: "555 0100"}
	rows, err = s.Update(ctx, missing)
	if err != nil || rows != 0 {
		t.Fatalf("update missing: rows=%d err=%v", rows, err)
	}

	rows, err = s.Delete(ctx, p.ID)
	if err != nil || rows != 1 {
		t.Fatalf("delete existing: rows=%d err=%v", rows, err)
	}
	rows, err = s.Delete(ctx, p.ID)
	if err != nil || rows != 0 {
		t.Fatalf("delete again: rows=%d err=%v", rows, err)
	}
}

func TestMemoryStore_FindPage(t *testing.T) {
	s := newPersonMemStore()
	ctx := context.Background()

	mustInsert(t, s, "Ada", "Lovelace")
	mustInsert(t, s, "Alan", "Turing")
	mustInsert(t, s, "Grace", "Hopper")

	tests := []struct {
		name      string
		q         PageQuery
		wantIDs   []int64
		wantTotal int
	}{
		{"all ordered by id", PageQuery{Limit: 10}, []int64{1, 2, 3}, 3},
		{"offset and limit", PageQuery{Offset: 1, Limit: 1}, []int64{2}, 3},
		{"offset past end", PageQuery{Offset: 10, Limit: 10}, []int64{}, 3},
		{"case-insensitive search", PageQuery{Search: "ADA", Limit: 10}, []int64{1}, 1},
		{"search matches any field", PageQuery{Search: "hopper", Limit: 10}, []int64{3}, 1},
		{"search without match", PageQuery{Search: "zzz", Limit: 10}, []int64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := s.FindPage(ctx, tt.q)
			if err != nil {
				t.Fatalf("find page: %v", err)
			}
			if total != tt.wantTotal {
				t.Fatalf("total: want %d, got %d", tt.wantTotal, total)
			}
			if len(items) != len(tt.wantIDs) {
				t.Fatalf("items: want %d, got %d", len(tt.wantIDs), len(items))
			}
			for i, want := range tt.wantIDs {
				if items[i].ID != want {
					t.Errorf("item %d: want id %d, got %d", i, want, items[i].ID)
				}
			}
		})
	}
}
