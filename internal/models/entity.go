package models

// Keyed is implemented by every persisted entity. The identifier is
// assigned by storage on insert and is immutable afterwards.
type Keyed interface {
	GetID() int64
	SetID(id int64)
}

// KeyedRef constrains a type parameter to a pointer to an entity type.
type KeyedRef[T any] interface {
	*T
	Keyed
}
