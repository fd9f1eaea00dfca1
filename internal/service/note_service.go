package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/entity"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/specification"
	"github.com/LuisRodriguez27/notex/internal/repository/unitofwork"
	"github.com/LuisRodriguez27/notex/pkg/events"
	"github.com/LuisRodriguez27/notex/pkg/richtext"

	"github.com/google/uuid"
)

const noteModule = "NoteService"

type INoteService interface {
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	GetDeleted(ctx context.Context) ([]*dto.NoteResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	GetByNotebook(ctx context.Context, notebookId uuid.UUID) ([]*dto.NoteResponse, error)
	Search(ctx context.Context, query string) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteNoteResponse, error)
	Restore(ctx context.Context, id uuid.UUID) (*dto.RestoreNoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	sweeper    *AttachmentSweeper
	bus        *events.Bus
	log        logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	sweeper *AttachmentSweeper,
	bus *events.Bus,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		sweeper:    sweeper,
		bus:        bus,
		log:        log,
	}
}

func (c *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	return c.list(ctx, "list notes",
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (c *noteService) GetDeleted(ctx context.Context) ([]*dto.NoteResponse, error) {
	return c.list(ctx, "list deleted notes",
		specification.Deleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (c *noteService) GetByNotebook(ctx context.Context, notebookId uuid.UUID) ([]*dto.NoteResponse, error) {
	return c.list(ctx, "list notebook notes",
		specification.ByNotebookID{NotebookID: notebookId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

// Search matches the query as a case-insensitive substring of title or
// serialized content. A blank query matches nothing.
func (c *noteService) Search(ctx context.Context, query string) ([]*dto.NoteResponse, error) {
	if strings.TrimSpace(query) == "" {
		return make([]*dto.NoteResponse, 0), nil
	}
	return c.list(ctx, "search notes",
		specification.TitleOrContentLike{Query: query},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (c *noteService) list(ctx context.Context, operation string, specs ...specification.Specification) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		c.log.Error(noteModule, operation+" failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Storage(operation)
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		reportContentDegraded(c.bus, c.log, note)
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

func (c *noteService) GetById(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		c.log.Error(noteModule, "get note failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("get note")
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	reportContentDegraded(c.bus, c.log, note)
	return toNoteResponse(note), nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.Validation("note title is required")
	}
	if req.NotebookId == uuid.Nil {
		return nil, apperror.Validation("notebook id is required")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: req.NotebookId})
	if err != nil {
		c.log.Error(noteModule, "get notebook failed", map[string]interface{}{"id": req.NotebookId.String(), "error": err.Error()})
		return nil, apperror.Storage("create note")
	}
	if notebook == nil {
		return nil, apperror.NotFound("notebook")
	}

	doc, serialized, ok := normalizeContentInput(string(req.Content))
	if !ok {
		c.log.Warn(noteModule, "content on create is not serialized form, storing as-is", map[string]interface{}{
			"notebook_id": req.NotebookId.String(),
		})
	}

	note := entity.Note{
		Id:         uuid.New(),
		NotebookId: req.NotebookId,
		Title:      req.Title,
		Content:    doc,
		RawContent: serialized,
		Color:      req.Color,
		CreatedAt:  time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		c.log.Error(noteModule, "create note failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Storage("create note")
	}

	return toNoteResponse(&note), nil
}

// Update patches the provided fields and then sweeps the note's
// attachments against the new content. The sweep runs after the row write
// and can only log, never fail the update.
func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		c.log.Error(noteModule, "get note failed", map[string]interface{}{"id": req.Id.String(), "error": err.Error()})
		return nil, apperror.Storage("update note")
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperror.Validation("note title is required")
		}
		note.Title = *req.Title
	}
	if req.Color != nil {
		note.Color = req.Color
	}

	// When the patch omits content, note.RawContent keeps the stored
	// text and the write carries it back to the row unchanged, whether
	// or not it parses.
	contentChanged := req.Content != nil
	if contentChanged {
		doc, serialized, ok := normalizeContentInput(string(req.Content))
		if !ok {
			c.log.Warn(noteModule, "content on update is not serialized form, storing as-is", map[string]interface{}{
				"id": req.Id.String(),
			})
		}
		note.Content = doc
		note.RawContent = serialized
	}

	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		c.log.Error(noteModule, "update note failed", map[string]interface{}{"id": req.Id.String(), "error": err.Error()})
		return nil, apperror.Storage("update note")
	}

	if contentChanged && c.sweeper != nil {
		c.sweeper.Sweep(ctx, uow, note.Id, note.RawContent)
	}

	return toNoteResponse(note), nil
}

// Delete trashes the note alone. Its attachments stay: the content still
// references them and the note may come back via restore.
func (c *noteService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		c.log.Error(noteModule, "get note failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete note")
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	if err := uow.NoteRepository().SoftDelete(ctx, id); err != nil {
		c.log.Error(noteModule, "delete note failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete note")
	}

	return &dto.DeleteNoteResponse{Success: true, Id: id}, nil
}

// Restore brings a trashed note back. A note cannot live inside a trashed
// notebook, so when the parent is in the trash it is revived too. Only
// the parent itself comes back, not its other notes.
func (c *noteService) Restore(ctx context.Context, id uuid.UUID) (*dto.RestoreNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.IncludeDeleted{},
	)
	if err != nil {
		c.log.Error(noteModule, "get note failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore note")
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: note.NotebookId},
		specification.IncludeDeleted{},
	)
	if err != nil {
		c.log.Error(noteModule, "get parent notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore note")
	}

	if err := uow.Begin(ctx); err != nil {
		c.log.Error(noteModule, "begin restore tx failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore note")
	}
	defer uow.Rollback()

	if notebook != nil && notebook.IsDeleted {
		if err := uow.NotebookRepository().Restore(ctx, notebook.Id); err != nil {
			c.log.Error(noteModule, "restore parent notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
			return nil, apperror.Storage("restore note")
		}
	}
	if err := uow.NoteRepository().Restore(ctx, id); err != nil {
		c.log.Error(noteModule, "restore note failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore note")
	}

	if err := uow.Commit(); err != nil {
		c.log.Error(noteModule, "commit restore tx failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore note")
	}

	return &dto.RestoreNoteResponse{Restored: true}, nil
}

// normalizeContentInput decides what to persist for incoming content.
// Serialized input is stored verbatim. Text that is not serialized form
// is also stored verbatim, reported via ok=false, and degrades to the
// empty document on read. Blank input becomes the empty document.
func normalizeContentInput(raw string) (doc richtext.Document, serialized string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return richtext.Empty(), "{}", true
	}
	if !richtext.IsSerialized(trimmed) {
		return richtext.Empty(), raw, false
	}
	doc, _ = richtext.Decode(trimmed)
	return doc, raw, true
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	content := n.RawContent
	if n.ContentDegraded || n.Content.IsEmpty() {
		content = "{}"
	}
	return &dto.NoteResponse{
		Id:         n.Id,
		NotebookId: n.NotebookId,
		Title:      n.Title,
		Content:    json.RawMessage(content),
		Color:      n.Color,
		IsDeleted:  n.IsDeleted,
		IsSynced:   n.IsSynced,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// reportContentDegraded logs and publishes when a note read came back
// with content that failed to parse and was replaced by the empty
// document.
func reportContentDegraded(bus *events.Bus, log logger.ILogger, note *entity.Note) {
	if note == nil || !note.ContentDegraded {
		return
	}
	log.Warn(noteModule, "stored note content failed to parse, degraded to empty document", map[string]interface{}{
		"id": note.Id.String(),
	})
	if bus == nil {
		return
	}
	_ = bus.Publish(events.BaseEvent{
		Type: events.TypeContentDegraded,
		Data: map[string]interface{}{
			"note_id": note.Id.String(),
		},
		OccurredAt: time.Now(),
	})
}
