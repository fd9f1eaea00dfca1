package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Name  string  `json:"name" validate:"required"`
	Color *string `json:"color"`
}

// UpdateNotebookRequest is a patch: nil fields are absent and leave the
// stored value untouched.
type UpdateNotebookRequest struct {
	Id    uuid.UUID `json:"-"`
	Name  *string   `json:"name"`
	Color *string   `json:"color"`
}

// NotebookResponse carries the notebook and its live note list (newest
// created first), matching what the sidebar renders.
type NotebookResponse struct {
	Id        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Color     *string         `json:"color"`
	IsDeleted bool            `json:"is_deleted"`
	IsSynced  bool            `json:"is_synced"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at"`
	Notes     []*NoteResponse `json:"notes"`
}

type DeleteNotebookResponse struct {
	Success bool      `json:"success"`
	Id      uuid.UUID `json:"id"`
}

type RestoreNotebookResponse struct {
	Restored bool `json:"restored"`
}
