package mapper

import (
	"github.com/LuisRodriguez27/notex/internal/entity"
	"github.com/LuisRodriguez27/notex/internal/model"
)

type AttachmentMapper struct{}

func NewAttachmentMapper() *AttachmentMapper {
	return &AttachmentMapper{}
}

func (m *AttachmentMapper) ToEntity(a *model.Attachment) *entity.Attachment {
	if a == nil {
		return nil
	}
	return &entity.Attachment{
		Id:        a.Id,
		NoteId:    a.NoteId,
		Type:      a.Type,
		Path:      a.Path,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AttachmentMapper) ToModel(a *entity.Attachment) *model.Attachment {
	if a == nil {
		return nil
	}
	return &model.Attachment{
		Id:        a.Id,
		NoteId:    a.NoteId,
		Type:      a.Type,
		Path:      a.Path,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AttachmentMapper) ToEntities(attachments []*model.Attachment) []*entity.Attachment {
	entities := make([]*entity.Attachment, len(attachments))
	for i, a := range attachments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
