package contract

import (
	"context"

	"github.com/LuisRodriguez27/notex/internal/entity"
	"github.com/LuisRodriguez27/notex/internal/repository/specification"

	"github.com/google/uuid"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error

	// Delete removes the metadata row only. The on-disk file is the
	// caller's responsibility; dropping the row never touches the binary.
	Delete(ctx context.Context, id uuid.UUID) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Attachment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attachment, error)
}
