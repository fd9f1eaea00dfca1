package mapper

import (
	"time"

	"github.com/LuisRodriguez27/notex/internal/entity"
	"github.com/LuisRodriguez27/notex/internal/model"
	"github.com/LuisRodriguez27/notex/pkg/richtext"

	"gorm.io/gorm"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// ToEntity decodes the persisted content text into its structured form.
// Corrupt content degrades to the empty document and flags the entity; a
// parse failure never escapes the repository.
func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	doc, ok := richtext.Decode(n.Content)

	return &entity.Note{
		Id:              n.Id,
		NotebookId:      n.NotebookId,
		Title:           n.Title,
		Content:         doc,
		RawContent:      n.Content,
		Color:           n.Color,
		IsSynced:        n.IsSynced,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       n.DeletedAt.Valid,
		ContentDegraded: !ok,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) (*model.Note, error) {
	if n == nil {
		return nil, nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	} else if n.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	// The raw text is authoritative: it carries the stored content back
	// to the row untouched, including text Decode could not parse.
	content := n.RawContent
	if content == "" {
		encoded, err := richtext.Encode(n.Content)
		if err != nil {
			return nil, err
		}
		content = encoded
	}

	return &model.Note{
		Id:         n.Id,
		NotebookId: n.NotebookId,
		Title:      n.Title,
		Content:    content,
		Color:      n.Color,
		IsSynced:   n.IsSynced,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}, nil
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
