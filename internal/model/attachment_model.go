package model

import (
	"time"

	"github.com/google/uuid"
)

// Attachment rows are hard-deleted (no trash for binaries); the referenced
// file on disk is removed separately by the caller.
type Attachment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Path      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Note *Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Attachment) TableName() string {
	return "attachments"
}
