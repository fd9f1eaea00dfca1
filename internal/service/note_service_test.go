package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")

	res, err := env.notes.Create(ctx, &dto.CreateNoteRequest{
		NotebookId: nb.Id,
		Title:      "standup",
		Content:    json.RawMessage(`{"blocks":[{"type":"paragraph","text":"notes"}]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, nb.Id, res.NotebookId)
	assert.Equal(t, "standup", res.Title)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Content, &doc))
	assert.Contains(t, doc, "blocks")
}

func TestNoteCreateRequiresExistingNotebook(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notes.Create(context.Background(), &dto.CreateNoteRequest{
		NotebookId: uuid.New(),
		Title:      "orphan",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNoteCreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	nb := env.createNotebook(t, "Work")

	_, err := env.notes.Create(context.Background(), &dto.CreateNoteRequest{
		NotebookId: nb.Id,
		Title:      "   ",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestNoteCreateWithoutContentStoresEmptyDocument(t *testing.T) {
	env := newTestEnv(t)
	nb := env.createNotebook(t, "Work")

	res := env.createNote(t, nb, "blank")
	assert.JSONEq(t, "{}", string(res.Content))
}

func TestNoteUpdateIsPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	created, err := env.notes.Create(ctx, &dto.CreateNoteRequest{
		NotebookId: nb.Id,
		Title:      "standup",
		Content:    json.RawMessage(`{"blocks":[{"type":"paragraph","text":"original"}]}`),
		Color:      strPtr("#00ff00"),
	})
	require.NoError(t, err)

	// Patch the title only; content and color must survive.
	updated, err := env.notes.Update(ctx, &dto.UpdateNoteRequest{
		Id:    created.Id,
		Title: strPtr("daily standup"),
	})
	require.NoError(t, err)
	assert.Equal(t, "daily standup", updated.Title)
	assert.JSONEq(t, string(created.Content), string(updated.Content))
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#00ff00", *updated.Color)
	assert.NotNil(t, updated.UpdatedAt)
}

// A patch that does not carry content must write the stored text back
// byte for byte, even when that text no longer parses. Renaming a note
// must never be the write that destroys its content.
func TestTitleOnlyUpdatePreservesUnparseableContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "damaged")

	const corrupt = `{"blocks": [broken`
	require.NoError(t, env.db.Exec("UPDATE notes SET content = ? WHERE id = ?", corrupt, note.Id).Error)

	updated, err := env.notes.Update(ctx, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Title: strPtr("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	// The read view degrades, the row does not.
	assert.JSONEq(t, "{}", string(updated.Content))

	var stored string
	require.NoError(t, env.db.Raw("SELECT content FROM notes WHERE id = ?", note.Id).Scan(&stored).Error)
	assert.Equal(t, corrupt, stored)
}

// Serialized input is stored exactly as sent, not re-marshaled: key
// order and whitespace survive.
func TestContentUpdateStoresInputVerbatim(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "standup")

	const content = `{"version": 2, "blocks": [{"text": "hi"}]}`
	_, err := env.notes.Update(ctx, &dto.UpdateNoteRequest{
		Id:      note.Id,
		Content: json.RawMessage(content),
	})
	require.NoError(t, err)

	var stored string
	require.NoError(t, env.db.Raw("SELECT content FROM notes WHERE id = ?", note.Id).Scan(&stored).Error)
	assert.Equal(t, content, stored)
}

// Content that is not serialized form is still stored as-is; it only
// degrades on the way out.
func TestContentUpdateKeepsUnserializedInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "standup")

	const content = `plain text, not a document`
	updated, err := env.notes.Update(ctx, &dto.UpdateNoteRequest{
		Id:      note.Id,
		Content: json.RawMessage(content),
	})
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(updated.Content))

	var stored string
	require.NoError(t, env.db.Raw("SELECT content FROM notes WHERE id = ?", note.Id).Scan(&stored).Error)
	assert.Equal(t, content, stored)
}

func TestNoteUpdateUnknownId(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notes.Update(context.Background(), &dto.UpdateNoteRequest{
		Id:    uuid.New(),
		Title: strPtr("x"),
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNoteDeleteAndTrashView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "standup")

	res, err := env.notes.Delete(ctx, note.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = env.notes.GetById(ctx, note.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	deleted, err := env.notes.GetDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.True(t, deleted[0].IsDeleted)

	// The parent notebook stays live.
	live, err := env.notebooks.GetById(ctx, nb.Id)
	require.NoError(t, err)
	assert.False(t, live.IsDeleted)
}

// Restoring a note from a trashed notebook revives the parent notebook
// but not the notebook's other trashed notes.
func TestNoteRestoreRevivesParentNotebookOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	target := env.createNote(t, nb, "alpha")
	sibling := env.createNote(t, nb, "beta")

	_, err := env.notebooks.Delete(ctx, nb.Id)
	require.NoError(t, err)

	res, err := env.notes.Restore(ctx, target.Id)
	require.NoError(t, err)
	assert.True(t, res.Restored)

	restoredNote, err := env.notes.GetById(ctx, target.Id)
	require.NoError(t, err)
	assert.False(t, restoredNote.IsDeleted)

	parent, err := env.notebooks.GetById(ctx, nb.Id)
	require.NoError(t, err)
	assert.False(t, parent.IsDeleted)

	// The sibling stays in the trash.
	_, err = env.notes.GetById(ctx, sibling.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNoteRestoreWithLiveParent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "alpha")

	_, err := env.notes.Delete(ctx, note.Id)
	require.NoError(t, err)

	_, err = env.notes.Restore(ctx, note.Id)
	require.NoError(t, err)

	restored, err := env.notes.GetById(ctx, note.Id)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
}

func TestNoteRestoreUnknownId(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notes.Restore(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNoteSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	env.createNote(t, nb, "Meeting Agenda")
	_, err := env.notes.Create(ctx, &dto.CreateNoteRequest{
		NotebookId: nb.Id,
		Title:      "Recipes",
		Content:    json.RawMessage(`{"blocks":[{"text":"agenda for dinner"}]}`),
	})
	require.NoError(t, err)
	env.createNote(t, nb, "Unrelated")

	// Matches title and content, case-insensitively.
	hits, err := env.notes.Search(ctx, "AGENDA")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = env.notes.Search(ctx, "dinner")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Recipes", hits[0].Title)

	// Blank query matches nothing.
	hits, err = env.notes.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

// A row whose content text is not valid serialized form must still be
// readable: it comes back as the empty document and a degrade event is
// published.
func TestNoteCorruptContentDegradesOnRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "damaged")

	err := env.db.Exec("UPDATE notes SET content = ? WHERE id = ?", `{"blocks": [broken`, note.Id).Error
	require.NoError(t, err)

	evts, err := env.bus.Subscribe(ctx)
	require.NoError(t, err)

	fetched, err := env.notes.GetById(ctx, note.Id)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(fetched.Content))

	select {
	case evt := <-evts:
		assert.Equal(t, events.TypeContentDegraded, evt.Type)
		assert.Equal(t, note.Id.String(), evt.Data["note_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("no degrade event published")
	}
}

// Writing new content over a corrupt row heals it.
func TestNoteUpdateHealsCorruptContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nb := env.createNotebook(t, "Work")
	note := env.createNote(t, nb, "damaged")

	err := env.db.Exec("UPDATE notes SET content = ? WHERE id = ?", "not json at all", note.Id).Error
	require.NoError(t, err)

	updated, err := env.notes.Update(ctx, &dto.UpdateNoteRequest{
		Id:      note.Id,
		Content: json.RawMessage(`{"blocks":[{"text":"fresh"}]}`),
	})
	require.NoError(t, err)
	assert.Contains(t, string(updated.Content), "fresh")

	fetched, err := env.notes.GetById(ctx, note.Id)
	require.NoError(t, err)
	assert.Contains(t, string(fetched.Content), "fresh")
}

func TestNoteGetByNotebook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	work := env.createNotebook(t, "Work")
	home := env.createNotebook(t, "Home")
	env.createNote(t, work, "standup")
	env.createNote(t, home, "groceries")

	notes, err := env.notes.GetByNotebook(ctx, work.Id)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "standup", notes[0].Title)
}
