package service

import (
	"context"
	"time"

	"paperspace-be/internal/dto"
	"paperspace-be/internal/entity"
	"paperspace-be/internal/pkg/apperrors"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	CreateWorkspace(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	GetWorkspaces(ctx context.Context, userId uuid.UUID) ([]*dto.WorkspaceResponse, error)
	GetWorkspace(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) (*dto.WorkspaceResponse, error)
	UpdateWorkspace(ctx context.Context, userId uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	DeleteWorkspace(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) error
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
	}
}

func toWorkspaceResponse(w *entity.Workspace) *dto.WorkspaceResponse {
	return &dto.WorkspaceResponse{
		Id:          w.Id,
		Name:        w.Name,
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// findOwnedWorkspace scopes the lookup by owner, so a foreign workspace
// is indistinguishable from a missing one.
func findOwnedWorkspace(ctx context.Context, uow unitofwork.UnitOfWork, userId, workspaceId uuid.UUID) (*entity.Workspace, error) {
	workspace, err := uow.WorkspaceRepository().FindOne(ctx,
		specification.ByID{ID: workspaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.Persistence("failed to load workspace", err)
	}
	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}
	return workspace, nil
}

func (s *workspaceService) CreateWorkspace(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace := &entity.Workspace{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
		return nil, apperrors.Persistence("failed to create workspace", err)
	}

	return toWorkspaceResponse(workspace), nil
}

func (s *workspaceService) GetWorkspaces(ctx context.Context, userId uuid.UUID) ([]*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspaces, err := uow.WorkspaceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperrors.Persistence("failed to list workspaces", err)
	}

	res := make([]*dto.WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		res[i] = toWorkspaceResponse(w)
	}
	return res, nil
}

func (s *workspaceService) GetWorkspace(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, workspaceId)
	if err != nil {
		return nil, err
	}
	return toWorkspaceResponse(workspace), nil
}

func (s *workspaceService) UpdateWorkspace(ctx context.Context, userId uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	if req.Name == nil && req.Description == nil {
		return nil, apperrors.Validation("no fields to update")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.Description != nil {
		workspace.Description = *req.Description
	}
	now := time.Now()
	workspace.UpdatedAt = &now

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, apperrors.Persistence("failed to update workspace", err)
	}

	return toWorkspaceResponse(workspace), nil
}

func (s *workspaceService) DeleteWorkspace(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, workspaceId)
	if err != nil {
		return err
	}

	if err := uow.WorkspaceRepository().Delete(ctx, workspace.Id); err != nil {
		return apperrors.Persistence("failed to delete workspace", err)
	}
	return nil
}
