package contract

import (
	"context"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkspacePaperRepository interface {
	Create(ctx context.Context, workspacePaper *entity.WorkspacePaper) error
	// Delete removes the association and reports how many rows matched,
	// so callers can distinguish "removed" from "was never linked".
	Delete(ctx context.Context, workspaceId uuid.UUID, paperId uuid.UUID) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
