package entity

import (
	"time"

	"github.com/LuisRodriguez27/notex/pkg/richtext"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	Title      string
	Content    richtext.Document
	// RawContent is the persisted serialized text, kept verbatim so a
	// write that does not touch content stores the row back byte for
	// byte. Content above is its decoded view.
	RawContent string
	Color      *string
	IsSynced   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool

	// ContentDegraded is set when the stored content failed to parse and
	// Content was replaced by the empty document.
	ContentDegraded bool
}
