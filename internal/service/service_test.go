package service

import (
	"context"
	"testing"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/model"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/unitofwork"
	"github.com/LuisRodriguez27/notex/pkg/database"
	"github.com/LuisRodriguez27/notex/pkg/events"
	"github.com/LuisRodriguez27/notex/pkg/filestore"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	files       *filestore.FileStore
	bus         *events.Bus
	uowFactory  unitofwork.RepositoryFactory
	notebooks   INotebookService
	notes       INoteService
	attachments IAttachmentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))

	files, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	bus := events.NewBus()
	t.Cleanup(func() { bus.Close() })

	nop := logger.NewNopLogger()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sweeper := NewAttachmentSweeper(files, NewResourceExtractor(), bus, nop)

	return &testEnv{
		db:          db,
		files:       files,
		bus:         bus,
		uowFactory:  uowFactory,
		notebooks:   NewNotebookService(uowFactory, bus, nop),
		notes:       NewNoteService(uowFactory, sweeper, bus, nop),
		attachments: NewAttachmentService(uowFactory, files, nop),
	}
}

func (e *testEnv) createNotebook(t *testing.T, name string) *dto.NotebookResponse {
	t.Helper()
	res, err := e.notebooks.Create(context.Background(), &dto.CreateNotebookRequest{Name: name})
	require.NoError(t, err)
	return res
}

func (e *testEnv) createNote(t *testing.T, notebook *dto.NotebookResponse, title string) *dto.NoteResponse {
	t.Helper()
	res, err := e.notes.Create(context.Background(), &dto.CreateNoteRequest{
		NotebookId: notebook.Id,
		Title:      title,
	})
	require.NoError(t, err)
	return res
}

func strPtr(s string) *string {
	return &s
}
