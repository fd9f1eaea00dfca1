package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentTypeImage is the only attachment type the editor produces
// today.
const AttachmentTypeImage = "image"

type Attachment struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	Type      string
	Path      string
	CreatedAt time.Time
}
