package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveAttachmentRequest struct {
	NoteId   uuid.UUID `json:"note_id" validate:"required"`
	FilePath string    `json:"file_path" validate:"required"`
}

// SaveAttachmentBufferRequest carries an in-memory payload (a pasted
// image). Data arrives base64-encoded over the wire.
type SaveAttachmentBufferRequest struct {
	NoteId       uuid.UUID `json:"note_id" validate:"required"`
	Data         []byte    `json:"data" validate:"required"`
	OriginalName string    `json:"original_name"`
}

// AttachmentResponse includes the resource URL the editor embeds in note
// content to reference the stored file.
type AttachmentResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteAttachmentResponse struct {
	Deleted bool `json:"deleted"`
}
