package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByArxivId struct {
	ArxivId string
}

func (s ByArxivId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("arxiv_id = ?", s.ArxivId)
}

type ByWorkspaceID struct {
	WorkspaceID uuid.UUID
}

func (s ByWorkspaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workspace_id = ?", s.WorkspaceID)
}

type ByPaperID struct {
	PaperID uuid.UUID
}

func (s ByPaperID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("paper_id = ?", s.PaperID)
}
