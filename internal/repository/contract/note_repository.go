package contract

import (
	"context"

	"github.com/LuisRodriguez27/notex/internal/entity"
	"github.com/LuisRodriguez27/notex/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error

	// SoftDelete moves a note to the trash. SoftDeleteByNotebookId is the
	// bulk form used by the notebook cascade.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error

	// Restore clears the trash flag; RestoreByNotebookId restores every
	// note of a notebook as part of the cascade restore.
	Restore(ctx context.Context, id uuid.UUID) error
	RestoreByNotebookId(ctx context.Context, notebookId uuid.UUID) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
}
