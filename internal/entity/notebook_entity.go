package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID
	Name      string
	Color     *string
	IsSynced  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool

	// Notes is the notebook's live (non-deleted) note list, newest created
	// first. Computed on read, never persisted.
	Notes []*Note
}
