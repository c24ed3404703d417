package integration

import (
	"context"
	"errors"
	"testing"

	"paperspace-be/internal/constant"
	"paperspace-be/internal/dto"
	"paperspace-be/internal/entity"
	"paperspace-be/internal/pkg/apperrors"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/repository/unitofwork"
	"paperspace-be/internal/service"
	"paperspace-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM returns a fixed reply or error, standing in for the
// completion backend.
type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func seedConversation(t *testing.T, uow unitofwork.UnitOfWork) (*entity.User, *entity.Conversation) {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "chat-" + uuid.New().String() + "@example.com",
		FullName:     "Chat Test User",
		PasswordHash: "x",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	workspace := &entity.Workspace{
		Id:     uuid.New(),
		UserId: user.Id,
		Name:   "Chat Workspace",
	}
	require.NoError(t, uow.WorkspaceRepository().Create(ctx, workspace))

	conversation := &entity.Conversation{
		Id:          uuid.New(),
		WorkspaceId: workspace.Id,
		Title:       "Chat Conversation",
	}
	require.NoError(t, uow.ConversationRepository().Create(ctx, conversation))

	return user, conversation
}

func TestChatPersistsBothTurns(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	user, conversation := seedConversation(t, uow)

	before, err := uow.ConversationRepository().FindOneOwned(ctx, conversation.Id, user.Id)
	require.NoError(t, err)
	require.NotNil(t, before)
	require.NotNil(t, before.UpdatedAt)

	chatService := service.NewChatService(factory, &scriptedLLM{reply: "The paper introduces the transformer."})

	res, err := chatService.Chat(ctx, user.Id, &dto.ChatRequest{
		ConversationId: conversation.Id,
		Message:        "Summarize the first paper",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.MessageRoleUser, res.Message.Role)
	assert.Equal(t, "Summarize the first paper", res.Message.Content)
	assert.Equal(t, constant.MessageRoleAssistant, res.Response.Role)
	assert.Equal(t, "The paper introduces the transformer.", res.Response.Content)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	require.NoError(t, err)
	require.Len(t, messages, 2, "exactly two rows per exchange")
	assert.Equal(t, constant.MessageRoleUser, messages[0].Role)
	assert.Equal(t, constant.MessageRoleAssistant, messages[1].Role)

	after, err := uow.ConversationRepository().FindOneOwned(ctx, conversation.Id, user.Id)
	require.NoError(t, err)
	require.NotNil(t, after.UpdatedAt)
	assert.True(t, after.UpdatedAt.After(*before.UpdatedAt),
		"updated_at should strictly increase, before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
}

func TestChatCompletionFailurePersistsNothing(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	user, conversation := seedConversation(t, uow)

	chatService := service.NewChatService(factory, &scriptedLLM{err: errors.New("model overloaded")})

	_, err := chatService.Chat(ctx, user.Id, &dto.ChatRequest{
		ConversationId: conversation.Id,
		Message:        "Summarize the first paper",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCompletion))

	count, err := uow.MessageRepository().Count(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "a failed completion must leave no messages behind")
}
