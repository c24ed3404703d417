package service

import (
	"context"
	"time"

	"paperspace-be/internal/constant"
	"paperspace-be/internal/dto"
	"paperspace-be/internal/entity"
	"paperspace-be/internal/pkg/apperrors"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/repository/unitofwork"
	"paperspace-be/pkg/assistant"
	"paperspace-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	chatHistoryLimit      = 10
	chatCompletionTimeout = 60 * time.Second
	chatTemperature       = 0.3
	chatMaxTokens         = 2000
)

type IChatService interface {
	CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetWorkspaceConversations(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.ConversationResponse, error)
	GetConversationMessages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]*dto.MessageResponse, error)
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	DeleteConversation(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
	}
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:          c.Id,
		WorkspaceId: c.WorkspaceId,
		Title:       c.Title,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		Role:           m.Role,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

func (s *chatService) CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = "New Conversation"
	}

	conversation := &entity.Conversation{
		Id:          uuid.New(),
		WorkspaceId: workspace.Id,
		Title:       title,
		CreatedAt:   time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, apperrors.Persistence("failed to create conversation", err)
	}

	return toConversationResponse(conversation), nil
}

func (s *chatService) GetWorkspaceConversations(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: workspace.Id},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperrors.Persistence("failed to list conversations", err)
	}

	res := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		res[i] = toConversationResponse(c)
	}
	return res, nil
}

func (s *chatService) GetConversationMessages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOneOwned(ctx, conversationId, userId)
	if err != nil {
		return nil, apperrors.Persistence("failed to load conversation", err)
	}
	if conversation == nil {
		return nil, apperrors.NotFound("conversation not found")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperrors.Persistence("failed to list messages", err)
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		msg := toMessageResponse(m)
		res[i] = &msg
	}
	return res, nil
}

func (s *chatService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOneOwned(ctx, req.ConversationId, userId)
	if err != nil {
		return nil, apperrors.Persistence("failed to load conversation", err)
	}
	if conversation == nil {
		return nil, apperrors.NotFound("conversation not found")
	}

	papers, err := uow.PaperRepository().FindAllByWorkspaceId(ctx, conversation.WorkspaceId)
	if err != nil {
		return nil, apperrors.Persistence("failed to load workspace papers", err)
	}

	history, err := uow.MessageRepository().FindRecent(ctx, conversation.Id, chatHistoryLimit)
	if err != nil {
		return nil, apperrors.Persistence("failed to load history", err)
	}

	paperContext := assistant.BuildContextFromPapers(papers)
	messages := assistant.BuildMessages(
		paperContext,
		assistant.HistoryWindow(history, chatHistoryLimit),
		req.Message,
	)

	completionCtx, cancel := context.WithTimeout(ctx, chatCompletionTimeout)
	defer cancel()

	aiResponse, err := s.llmProvider.Chat(completionCtx, messages,
		llm.WithTemperature(chatTemperature),
		llm.WithMaxTokens(chatMaxTokens),
	)
	if err != nil {
		return nil, apperrors.Completion("failed to generate response", err)
	}

	// Persist both turns and the recency bump atomically, so a crash
	// never records a user message without its answer.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Persistence("failed to begin transaction", err)
	}
	defer uow.Rollback()

	userMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleUser,
		Content:        req.Message,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, apperrors.Persistence("failed to store user message", err)
	}

	assistantMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleAssistant,
		Content:        aiResponse,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, apperrors.Persistence("failed to store assistant message", err)
	}

	if err := uow.ConversationRepository().Touch(ctx, conversation.Id); err != nil {
		return nil, apperrors.Persistence("failed to update conversation", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperrors.Persistence("failed to commit chat turn", err)
	}

	return &dto.ChatResponse{
		Message:  toMessageResponse(userMessage),
		Response: toMessageResponse(assistantMessage),
	}, nil
}

func (s *chatService) DeleteConversation(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOneOwned(ctx, conversationId, userId)
	if err != nil {
		return apperrors.Persistence("failed to load conversation", err)
	}
	if conversation == nil {
		return apperrors.NotFound("conversation not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperrors.Persistence("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByConversationId(ctx, conversation.Id); err != nil {
		return apperrors.Persistence("failed to delete messages", err)
	}
	if err := uow.ConversationRepository().Delete(ctx, conversation.Id); err != nil {
		return apperrors.Persistence("failed to delete conversation", err)
	}

	return uow.Commit()
}
