package implementation

import (
	"context"
	"errors"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/mapper"
	"paperspace-be/internal/model"
	"paperspace-be/internal/repository/contract"
	"paperspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaperRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaperMapper
}

func NewPaperRepository(db *gorm.DB) contract.PaperRepository {
	return &PaperRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaperMapper(),
	}
}

func (r *PaperRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaperRepositoryImpl) Create(ctx context.Context, paper *entity.Paper) error {
	m := r.mapper.ToModel(paper)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*paper = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaperRepositoryImpl) Update(ctx context.Context, paper *entity.Paper) error {
	m := r.mapper.ToModel(paper)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*paper = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaperRepositoryImpl) UpsertByArxivId(ctx context.Context, paper *entity.Paper) error {
	if paper.ArxivId == nil {
		return r.Create(ctx, paper)
	}

	m := r.mapper.ToModel(paper)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "arxiv_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "arxiv_id IS NOT NULL"}}},
		DoUpdates:   clause.AssignmentColumns([]string{"title"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	// On conflict the generated id in m does not match the stored row,
	// so reload by the natural key.
	var stored model.Paper
	if err := r.db.WithContext(ctx).Where("arxiv_id = ?", *paper.ArxivId).First(&stored).Error; err != nil {
		return err
	}
	*paper = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *PaperRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paper, error) {
	var m model.Paper
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaperRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paper, error) {
	var models []*model.Paper
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaperRepositoryImpl) FindAllByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) ([]*entity.Paper, error) {
	var models []*model.Paper
	err := r.db.WithContext(ctx).
		Joins("JOIN workspace_papers ON workspace_papers.paper_id = papers.id").
		Where("workspace_papers.workspace_id = ?", workspaceId).
		Order("workspace_papers.added_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaperRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Paper{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
