package unitofwork

import (
	"context"

	"github.com/LuisRodriguez27/notex/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Between
// Begin and Commit every repository runs on the same transaction, which is
// how the cascading delete/restore paths stay all-or-nothing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NotebookRepository() contract.NotebookRepository
	NoteRepository() contract.NoteRepository
	AttachmentRepository() contract.AttachmentRepository
	SettingRepository() contract.SettingRepository
}
