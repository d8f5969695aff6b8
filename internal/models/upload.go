package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Upload is a stored file: name plus content (base64 or plain text).
type Upload struct {
	bun.BaseModel `bun:"table:uploads,alias:up" json:"-"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	FileName    string    `bun:"file_name,notnull" json:"file_name"`
	FileContent string    `bun:"file_content" json:"file_content,omitempty"`
	UploadedAt  time.Time `bun:"uploaded_at,nullzero" json:"uploaded_at,omitempty"`
}

func (u *Upload) GetID() int64   { return u.ID }
func (u *Upload) SetID(id int64) { u.ID = id }
