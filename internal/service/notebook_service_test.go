package service

import (
	"context"
	"testing"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createNotebook(t, "Work")
	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, "Work", created.Name)
	assert.False(t, created.IsDeleted)

	fetched, err := env.notebooks.GetById(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, fetched.Id)
	assert.NotNil(t, fetched.Notes)
	assert.Len(t, fetched.Notes, 0)
}

func TestNotebookCreateRequiresName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notebooks.Create(context.Background(), &dto.CreateNotebookRequest{Name: "  "})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestNotebookGetAllAttachesLiveNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	work := env.createNotebook(t, "Work")
	home := env.createNotebook(t, "Home")

	env.createNote(t, work, "standup")
	trashed := env.createNote(t, work, "old plan")
	env.createNote(t, home, "groceries")

	_, err := env.notes.Delete(ctx, trashed.Id)
	require.NoError(t, err)

	all, err := env.notebooks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byName := map[string]*dto.NotebookResponse{}
	for _, nb := range all {
		byName[nb.Name] = nb
	}

	// The trashed note is not in the live list.
	require.Len(t, byName["Work"].Notes, 1)
	assert.Equal(t, "standup", byName["Work"].Notes[0].Title)
	require.Len(t, byName["Home"].Notes, 1)
}

func TestNotebookUpdateIsPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.notebooks.Create(ctx, &dto.CreateNotebookRequest{
		Name:  "Work",
		Color: strPtr("#ff0000"),
	})
	require.NoError(t, err)

	// Only the name is patched; color must survive.
	updated, err := env.notebooks.Update(ctx, &dto.UpdateNotebookRequest{
		Id:   created.Id,
		Name: strPtr("Job"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Job", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#ff0000", *updated.Color)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestNotebookUpdateUnknownId(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notebooks.Update(context.Background(), &dto.UpdateNotebookRequest{
		Id:   uuid.New(),
		Name: strPtr("x"),
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNotebookDeleteCascadesToNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	a := env.createNote(t, nb, "alpha")
	b := env.createNote(t, nb, "beta")

	res, err := env.notebooks.Delete(ctx, nb.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)

	// Notebook and both notes are gone from the live views.
	_, err = env.notebooks.GetById(ctx, nb.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.notes.GetById(ctx, a.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.notes.GetById(ctx, b.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// All of them appear in the trash views.
	deletedNotebooks, err := env.notebooks.GetDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, deletedNotebooks, 1)
	assert.True(t, deletedNotebooks[0].IsDeleted)

	deletedNotes, err := env.notes.GetDeleted(ctx)
	require.NoError(t, err)
	assert.Len(t, deletedNotes, 2)
}

func TestNotebookRestoreCascadesToNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "alpha")

	_, err := env.notebooks.Delete(ctx, nb.Id)
	require.NoError(t, err)

	res, err := env.notebooks.Restore(ctx, nb.Id)
	require.NoError(t, err)
	assert.True(t, res.Restored)

	restored, err := env.notebooks.GetById(ctx, nb.Id)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	require.Len(t, restored.Notes, 1)
	assert.Equal(t, note.Id, restored.Notes[0].Id)
}

func TestNotebookDeleteUnknownId(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notebooks.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNotebookDeleteSparesOtherNotebooks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	work := env.createNotebook(t, "Work")
	home := env.createNotebook(t, "Home")
	kept := env.createNote(t, home, "groceries")
	env.createNote(t, work, "standup")

	_, err := env.notebooks.Delete(ctx, work.Id)
	require.NoError(t, err)

	stillThere, err := env.notes.GetById(ctx, kept.Id)
	require.NoError(t, err)
	assert.Equal(t, "groceries", stillThere.Title)
}
