package implementation

import (
	"context"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/mapper"
	"paperspace-be/internal/model"
	"paperspace-be/internal/repository/contract"
	"paperspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspacePaperRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkspacePaperMapper
}

func NewWorkspacePaperRepository(db *gorm.DB) contract.WorkspacePaperRepository {
	return &WorkspacePaperRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkspacePaperMapper(),
	}
}

func (r *WorkspacePaperRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WorkspacePaperRepositoryImpl) Create(ctx context.Context, workspacePaper *entity.WorkspacePaper) error {
	m := r.mapper.ToModel(workspacePaper)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*workspacePaper = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkspacePaperRepositoryImpl) Delete(ctx context.Context, workspaceId uuid.UUID, paperId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("workspace_id = ? AND paper_id = ?", workspaceId, paperId).
		Delete(&model.WorkspacePaper{})
	return result.RowsAffected, result.Error
}

func (r *WorkspacePaperRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WorkspacePaper{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
