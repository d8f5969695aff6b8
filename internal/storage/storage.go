package storage

import "context"

// PageQuery selects one slice of a collection. Search, when non-empty, is
// matched as a case-insensitive substring against the store's configured
// text fields. Results are always ordered by identifier ascending so that
// repeated queries against an unchanged store return identical pages.
type PageQuery struct {
	Search string
	Offset int
	Limit  int
}

// FieldSet names the text fields of an entity the in-memory store can read,
// keyed by the same column names the SQL store uses.
type FieldSet[T any] map[string]func(*T) string

// Store is the storage collaborator: one logical collection keyed by an
// integer identifier, with transactional single-row writes. Missing rows
// surface database/sql.ErrNoRows; any other error is an I/O failure.
//
// Two implementations satisfy this contract: BunStore (SQLite through Bun)
// and MemoryStore (map-backed, for tests).
type Store[T any] interface {
	// Insert persists e and assigns its identifier.
	Insert(ctx context.Context, e *T) error

	// Update overwrites the row matching e's identifier and reports the
	// number of rows affected. Zero means the row does not exist; Update
	// never inserts.
	Update(ctx context.Context, e *T) (int64, error)

	// Delete removes the row with the given identifier and reports the
	// number of rows affected.
	Delete(ctx context.Context, id int64) (int64, error)

	// FindByID loads one row by identifier.
	FindByID(ctx context.Context, id int64) (*T, error)

	// FindOne loads the first row whose field equals value exactly.
	FindOne(ctx context.Context, field, value string) (*T, error)

	// FindPage returns one page of rows plus the total count of all rows
	// matching the query's search term, independent of Offset/Limit.
	FindPage(ctx context.Context, q PageQuery) ([]*T, int, error)
}
