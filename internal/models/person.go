package models

import "github.com/uptrace/bun"

// Person is a plain contact record.
type Person struct {
	bun.BaseModel `bun:"table:people,alias:p" json:"-"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	FirstName   string `bun:"first_name,notnull" json:"first_name"`
	LastName    string `bun:"last_name,notnull" json:"last_name"`
	PhoneNumber string `bun:"phone_number,notnull" json:"phone_number"`
	Email       string `bun:"email" json:"email,omitempty"`
}

func (p *Person) GetID() int64   { return p.ID }
func (p *Person) SetID(id int64) { p.ID = id }
