package contract

import (
	"context"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindOneOwned joins through workspaces so only a conversation
	// belonging to one of the user's workspaces is returned.
	FindOneOwned(ctx context.Context, conversationId uuid.UUID, userId uuid.UUID) (*entity.Conversation, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	// Touch bumps updated_at so conversation listings sort by recency.
	Touch(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
