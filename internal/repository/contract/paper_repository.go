package contract

import (
	"context"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaperRepository interface {
	Create(ctx context.Context, paper *entity.Paper) error
	Update(ctx context.Context, paper *entity.Paper) error
	// UpsertByArxivId inserts the paper or, when a row with the same
	// arxiv_id already exists, refreshes its title. The entity is
	// reloaded with the persisted row's id either way.
	UpsertByArxivId(ctx context.Context, paper *entity.Paper) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paper, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paper, error)
	FindAllByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) ([]*entity.Paper, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
