package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteVersion models per-note content history. The table is part of the
// schema for a future versioning feature; no operation writes or reads it
// yet.
type NoteVersion struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Note *Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (NoteVersion) TableName() string {
	return "note_versions"
}
