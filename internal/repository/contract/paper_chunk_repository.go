package contract

import (
	"context"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaperChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.PaperChunk) error
	DeleteByPaperId(ctx context.Context, paperId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
