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
	"github.com/LuisRodriguez27/notex/pkg/filestore"
	"github.com/LuisRodriguez27/notex/pkg/richtext"

	"github.com/google/uuid"
)

const attachmentModule = "AttachmentService"

type IAttachmentService interface {
	Save(ctx context.Context, req *dto.SaveAttachmentRequest) (*dto.AttachmentResponse, error)
	SaveFromBuffer(ctx context.Context, req *dto.SaveAttachmentBufferRequest) (*dto.AttachmentResponse, error)
	GetByNote(ctx context.Context, noteId uuid.UUID) ([]*dto.AttachmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteAttachmentResponse, error)
}

type attachmentService struct {
	uowFactory unitofwork.RepositoryFactory
	files      *filestore.FileStore
	log        logger.ILogger
}

func NewAttachmentService(
	uowFactory unitofwork.RepositoryFactory,
	files *filestore.FileStore,
	log logger.ILogger,
) IAttachmentService {
	return &attachmentService{
		uowFactory: uowFactory,
		files:      files,
		log:        log,
	}
}

// Save copies a file from the user's filesystem into managed storage and
// records it against the note. The row is written only after the binary is
// safely stored; a failed row write cleans the binary back up.
func (c *attachmentService) Save(ctx context.Context, req *dto.SaveAttachmentRequest) (*dto.AttachmentResponse, error) {
	if strings.TrimSpace(req.FilePath) == "" {
		return nil, apperror.Validation("file path is required")
	}

	uow, err := c.noteMustExist(ctx, req.NoteId, "save attachment")
	if err != nil {
		return nil, err
	}

	storedPath, err := c.files.SaveCopy(req.FilePath)
	if err != nil {
		c.log.Error(attachmentModule, "store attachment file failed", map[string]interface{}{
			"note_id": req.NoteId.String(),
			"source":  req.FilePath,
			"error":   err.Error(),
		})
		return nil, apperror.AttachmentIO("save attachment")
	}

	return c.createRow(ctx, uow, req.NoteId, storedPath)
}

// SaveFromBuffer stores an in-memory payload, typically an image pasted
// into the editor.
func (c *attachmentService) SaveFromBuffer(ctx context.Context, req *dto.SaveAttachmentBufferRequest) (*dto.AttachmentResponse, error) {
	if len(req.Data) == 0 {
		return nil, apperror.Validation("attachment data is required")
	}

	uow, err := c.noteMustExist(ctx, req.NoteId, "save attachment")
	if err != nil {
		return nil, err
	}

	storedPath, err := c.files.SaveBuffer(req.Data, req.OriginalName)
	if err != nil {
		c.log.Error(attachmentModule, "store attachment buffer failed", map[string]interface{}{
			"note_id": req.NoteId.String(),
			"error":   err.Error(),
		})
		return nil, apperror.AttachmentIO("save attachment")
	}

	return c.createRow(ctx, uow, req.NoteId, storedPath)
}

func (c *attachmentService) noteMustExist(ctx context.Context, noteId uuid.UUID, operation string) (unitofwork.UnitOfWork, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		c.log.Error(attachmentModule, "get note failed", map[string]interface{}{"note_id": noteId.String(), "error": err.Error()})
		return nil, apperror.Storage(operation)
	}
	if note == nil {
		return nil, apperror.NotFound("note")
	}
	return uow, nil
}

func (c *attachmentService) createRow(ctx context.Context, uow unitofwork.UnitOfWork, noteId uuid.UUID, storedPath string) (*dto.AttachmentResponse, error) {
	attachment := entity.Attachment{
		Id:        uuid.New(),
		NoteId:    noteId,
		Type:      entity.AttachmentTypeImage,
		Path:      storedPath,
		CreatedAt: time.Now(),
	}

	if err := uow.AttachmentRepository().Create(ctx, &attachment); err != nil {
		c.log.Error(attachmentModule, "create attachment row failed", map[string]interface{}{
			"note_id": noteId.String(),
			"path":    storedPath,
			"error":   err.Error(),
		})
		// Don't leave an unreferenced binary behind.
		if rmErr := c.files.Remove(storedPath); rmErr != nil {
			c.log.Warn(attachmentModule, "cleanup of stored file failed", map[string]interface{}{
				"path":  storedPath,
				"error": rmErr.Error(),
			})
		}
		return nil, apperror.Storage("save attachment")
	}

	return toAttachmentResponse(&attachment), nil
}

func (c *attachmentService) GetByNote(ctx context.Context, noteId uuid.UUID) ([]*dto.AttachmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	attachments, err := uow.AttachmentRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		c.log.Error(attachmentModule, "list attachments failed", map[string]interface{}{"note_id": noteId.String(), "error": err.Error()})
		return nil, apperror.Storage("list attachments")
	}

	result := make([]*dto.AttachmentResponse, 0, len(attachments))
	for _, att := range attachments {
		result = append(result, toAttachmentResponse(att))
	}
	return result, nil
}

// Delete removes the row and then the file. A missing id is reported as
// deleted=false rather than an error; a failed file removal is logged and
// swallowed because the row, the source of truth, is already gone.
func (c *attachmentService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteAttachmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	attachment, err := uow.AttachmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		c.log.Error(attachmentModule, "get attachment failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete attachment")
	}
	if attachment == nil {
		return &dto.DeleteAttachmentResponse{Deleted: false}, nil
	}

	if err := uow.AttachmentRepository().Delete(ctx, id); err != nil {
		c.log.Error(attachmentModule, "delete attachment row failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, apperror.Storage("delete attachment")
	}

	if !c.files.Contains(attachment.Path) {
		c.log.Warn(attachmentModule, "attachment path outside store, file left in place", map[string]interface{}{
			"id":   id.String(),
			"path": attachment.Path,
		})
		return &dto.DeleteAttachmentResponse{Deleted: true}, nil
	}
	if err := c.files.Remove(attachment.Path); err != nil {
		c.log.Warn(attachmentModule, "remove attachment file failed", map[string]interface{}{
			"id":    id.String(),
			"path":  attachment.Path,
			"error": err.Error(),
		})
	}

	return &dto.DeleteAttachmentResponse{Deleted: true}, nil
}

func toAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		Id:        a.Id,
		NoteId:    a.NoteId,
		Type:      a.Type,
		Path:      a.Path,
		URL:       richtext.ResourceURL(a.Path),
		CreatedAt: a.CreatedAt,
	}
}
