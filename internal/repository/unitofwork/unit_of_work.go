package unitofwork

import (
	"context"

	"paperspace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WorkspaceRepository() contract.WorkspaceRepository
	PaperRepository() contract.PaperRepository
	WorkspacePaperRepository() contract.WorkspacePaperRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	PaperChunkRepository() contract.PaperChunkRepository
}
