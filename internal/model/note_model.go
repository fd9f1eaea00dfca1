package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	NotebookId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Content    string         `gorm:"type:text;not null"`
	Color      *string        `gorm:"type:varchar(32)"`
	IsSynced   bool           `gorm:"not null;default:false"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime;index"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Notebook *Notebook `gorm:"foreignKey:NotebookId;constraint:OnDelete:RESTRICT"`
}

func (Note) TableName() string {
	return "notes"
}
