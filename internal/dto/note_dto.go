package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	NotebookId uuid.UUID       `json:"notebook_id" validate:"required"`
	Title      string          `json:"title" validate:"required"`
	Content    json.RawMessage `json:"content"`
	Color      *string         `json:"color"`
}

// UpdateNoteRequest is a patch: nil fields are absent and leave the stored
// value untouched.
type UpdateNoteRequest struct {
	Id      uuid.UUID       `json:"-"`
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
	Color   *string         `json:"color"`
}

type NoteResponse struct {
	Id         uuid.UUID       `json:"id"`
	NotebookId uuid.UUID       `json:"notebook_id"`
	Title      string          `json:"title"`
	Content    json.RawMessage `json:"content"`
	Color      *string         `json:"color"`
	IsDeleted  bool            `json:"is_deleted"`
	IsSynced   bool            `json:"is_synced"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

type DeleteNoteResponse struct {
	Success bool      `json:"success"`
	Id      uuid.UUID `json:"id"`
}

type RestoreNoteResponse struct {
	Restored bool `json:"restored"`
}
