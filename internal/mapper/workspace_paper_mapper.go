package mapper

import (
	"paperspace-be/internal/entity"
	"paperspace-be/internal/model"
)

type WorkspacePaperMapper struct{}

func NewWorkspacePaperMapper() *WorkspacePaperMapper {
	return &WorkspacePaperMapper{}
}

func (m *WorkspacePaperMapper) ToEntity(wp *model.WorkspacePaper) *entity.WorkspacePaper {
	if wp == nil {
		return nil
	}

	return &entity.WorkspacePaper{
		WorkspaceId: wp.WorkspaceId,
		PaperId:     wp.PaperId,
		AddedAt:     wp.AddedAt,
	}
}

func (m *WorkspacePaperMapper) ToModel(wp *entity.WorkspacePaper) *model.WorkspacePaper {
	if wp == nil {
		return nil
	}

	return &model.WorkspacePaper{
		WorkspaceId: wp.WorkspaceId,
		PaperId:     wp.PaperId,
		AddedAt:     wp.AddedAt,
	}
}
