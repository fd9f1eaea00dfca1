package service

import (
	"context"
	"strings"
	"time"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/entity"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/specification"
	"github.com/LuisRodriguez27/notex/internal/repository/unitofwork"
	"github.com/LuisRodriguez27/notex/pkg/events"

	"github.com/google/uuid"
)

const notebookModule = "NotebookService"

type INotebookService interface {
	GetAll(ctx context.Context) ([]*dto.NotebookResponse, error)
	GetDeleted(ctx context.Context) ([]*dto.NotebookResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.NotebookResponse, error)
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteNotebookResponse, error)
	Restore(ctx context.Context, id uuid.UUID) (*dto.RestoreNotebookResponse, error)
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        *events.Bus
	log        logger.ILogger
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	bus *events.Bus,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		bus:        bus,
		log:        log,
	}
}

func (c *notebookService) GetAll(ctx context.Context) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		c.log.Error(notebookModule, "list notebooks failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Storage("list notebooks")
	}

	return c.attachNotes(ctx, uow, notebooks)
}

func (c *notebookService) GetDeleted(ctx context.Context) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.Deleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		c.log.Error(notebookModule, "list deleted notebooks failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Storage("list deleted notebooks")
	}

	return c.attachNotes(ctx, uow, notebooks)
}

// attachNotes fetches the live notes of every notebook in one query and
// groups them in. The note list always excludes trashed notes, so a
// deleted notebook (whose notes the cascade trashed with it) comes back
// with an empty list.
func (c *notebookService) attachNotes(ctx context.Context, uow unitofwork.UnitOfWork, notebooks []*entity.Notebook) ([]*dto.NotebookResponse, error) {
	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	ids := make([]uuid.UUID, 0, len(notebooks))
	byId := make(map[uuid.UUID]*dto.NotebookResponse, len(notebooks))
	for _, notebook := range notebooks {
		res := toNotebookResponse(notebook)
		result = append(result, res)
		ids = append(ids, notebook.Id)
		byId[notebook.Id] = res
	}

	if len(ids) == 0 {
		return result, nil
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByNotebookIDs{NotebookIDs: ids},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		c.log.Error(notebookModule, "list notes for notebooks failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Storage("list notebooks")
	}

	for _, note := range notes {
		reportContentDegraded(c.bus, c.log, note)
		if res, ok := byId[note.NotebookId]; ok {
			res.Notes = append(res.Notes, toNoteResponse(note))
		}
	}

	return result, nil
}

func (c *notebookService) GetById(ctx context.Context, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		c.log.Error(notebookModule, "get notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("get notebook")
	}
	if notebook == nil {
		return nil, apperror.NotFound("notebook")
	}

	res := toNotebookResponse(notebook)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		c.log.Error(notebookModule, "list notebook notes failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("get notebook")
	}
	for _, note := range notes {
		reportContentDegraded(c.bus, c.log, note)
		res.Notes = append(res.Notes, toNoteResponse(note))
	}

	return res, nil
}

func (c *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("notebook name is required")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook := entity.Notebook{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		c.log.Error(notebookModule, "create notebook failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Storage("create notebook")
	}

	return toNotebookResponse(&notebook), nil
}

func (c *notebookService) Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		c.log.Error(notebookModule, "get notebook failed", map[string]interface{}{"id": req.Id.String(), "error": err.Error()})
		return nil, apperror.Storage("update notebook")
	}
	if notebook == nil {
		return nil, apperror.NotFound("notebook")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperror.Validation("notebook name is required")
		}
		notebook.Name = *req.Name
	}
	if req.Color != nil {
		notebook.Color = req.Color
	}

	now := time.Now()
	notebook.UpdatedAt = &now

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		c.log.Error(notebookModule, "update notebook failed", map[string]interface{}{"id": req.Id.String(), "error": err.Error()})
		return nil, apperror.Storage("update notebook")
	}

	return toNotebookResponse(notebook), nil
}

// Delete trashes the notebook and every note in it as one transaction:
// either the whole subtree moves to the trash or nothing does.
func (c *notebookService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		c.log.Error(notebookModule, "get notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete notebook")
	}
	if notebook == nil {
		return nil, apperror.NotFound("notebook")
	}

	if err := uow.Begin(ctx); err != nil {
		c.log.Error(notebookModule, "begin delete tx failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete notebook")
	}
	defer uow.Rollback()

	if err := uow.NotebookRepository().SoftDelete(ctx, id); err != nil {
		c.log.Error(notebookModule, "delete notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete notebook")
	}
	if err := uow.NoteRepository().SoftDeleteByNotebookId(ctx, id); err != nil {
		c.log.Error(notebookModule, "cascade delete notes failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete notebook")
	}

	if err := uow.Commit(); err != nil {
		c.log.Error(notebookModule, "commit delete tx failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete notebook")
	}

	return &dto.DeleteNotebookResponse{Success: true, Id: id}, nil
}

// Restore brings a trashed notebook back together with every note the
// delete cascade trashed, in one transaction.
func (c *notebookService) Restore(ctx context.Context, id uuid.UUID) (*dto.RestoreNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.IncludeDeleted{},
	)
	if err != nil {
		c.log.Error(notebookModule, "get notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore notebook")
	}
	if notebook == nil {
		return nil, apperror.NotFound("notebook")
	}

	if err := uow.Begin(ctx); err != nil {
		c.log.Error(notebookModule, "begin restore tx failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore notebook")
	}
	defer uow.Rollback()

	if err := uow.NotebookRepository().Restore(ctx, id); err != nil {
		c.log.Error(notebookModule, "restore notebook failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore notebook")
	}
	if err := uow.NoteRepository().RestoreByNotebookId(ctx, id); err != nil {
		c.log.Error(notebookModule, "cascade restore notes failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore notebook")
	}

	if err := uow.Commit(); err != nil {
		c.log.Error(notebookModule, "commit restore tx failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("restore notebook")
	}

	return &dto.RestoreNotebookResponse{Restored: true}, nil
}

func toNotebookResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:        n.Id,
		Name:      n.Name,
		Color:     n.Color,
		IsDeleted: n.IsDeleted,
		IsSynced:  n.IsSynced,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Notes:     make([]*dto.NoteResponse, 0),
	}
}
