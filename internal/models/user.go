package models

import "github.com/uptrace/bun"

// User is an account record. Password is transient input (registration or
// login only) and is never persisted; only PasswordHash is stored. Token is
// populated on successful authentication and is never persisted either.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID           int64  `bun:"id,pk,autoincrement" json:"id"`
	Username     string `bun:"username,notnull,unique" json:"username"`
	FirstName    string `bun:"first_name" json:"first_name,omitempty"`
	LastName     string `bun:"last_name" json:"last_name,omitempty"`
	Password     string `bun:"-" json:"password,omitempty"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"`
	Token        string `bun:"-" json:"token,omitempty"`
}

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }
