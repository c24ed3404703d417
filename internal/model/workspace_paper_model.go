package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkspacePaper struct {
	WorkspaceId uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaperId     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddedAt     time.Time `gorm:"not null;index"`
}

func (WorkspacePaper) TableName() string {
	return "workspace_papers"
}
