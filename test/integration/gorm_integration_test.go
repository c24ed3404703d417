package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/repository/unitofwork"
	"paperspace-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return unitofwork.NewRepositoryFactory(gormDB)
}

func newTestUow(t *testing.T) unitofwork.UnitOfWork {
	t.Helper()
	return newTestFactory(t).NewUnitOfWork(context.Background())
}

func TestRepositoryWiring(t *testing.T) {
	uow := newTestUow(t)

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.WorkspaceRepository())
	assert.NotNil(t, uow.PaperRepository())
	assert.NotNil(t, uow.WorkspacePaperRepository())
	assert.NotNil(t, uow.ConversationRepository())
	assert.NotNil(t, uow.MessageRepository())
	assert.NotNil(t, uow.PaperChunkRepository())

	t.Run("Check Paper Repository", func(t *testing.T) {
		count, err := uow.PaperRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Paper count: %d", count)
	})

	t.Run("Check Paper Chunk Repository", func(t *testing.T) {
		count, err := uow.PaperChunkRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("PaperChunk count: %d", count)
	})
}

func TestPaperUpsertByArxivId(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()

	arxivId := "it-" + uuid.New().String()
	first := &entity.Paper{
		Id:       uuid.New(),
		Title:    "First Title",
		Authors:  []string{"Author One"},
		Abstract: "Original abstract",
		ArxivId:  &arxivId,
	}

	err := uow.PaperRepository().UpsertByArxivId(ctx, first)
	require.NoError(t, err)
	storedId := first.Id

	// Second upsert with the same arxiv_id must not create a new row
	// and must refresh the title.
	second := &entity.Paper{
		Id:       uuid.New(),
		Title:    "Updated Title",
		Authors:  []string{"Author One"},
		Abstract: "Original abstract",
		ArxivId:  &arxivId,
	}
	err = uow.PaperRepository().UpsertByArxivId(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, storedId, second.Id, "upsert should resolve to the existing row")

	count, err := uow.PaperRepository().Count(ctx, specification.ByArxivId{ArxivId: arxivId})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	stored, err := uow.PaperRepository().FindOne(ctx, specification.ByArxivId{ArxivId: arxivId})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Updated Title", stored.Title)
}

func TestWorkspacePaperLifecycle(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "test-integration-" + uuid.New().String() + "@example.com",
		FullName:     "Integration Test User",
		PasswordHash: "x",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	workspace := &entity.Workspace{
		Id:     uuid.New(),
		UserId: user.Id,
		Name:   "Integration Workspace",
	}
	require.NoError(t, uow.WorkspaceRepository().Create(ctx, workspace))

	paper := &entity.Paper{
		Id:       uuid.New(),
		Title:    "Linked Paper",
		Abstract: "For the link lifecycle",
	}
	require.NoError(t, uow.PaperRepository().Create(ctx, paper))

	t.Run("Link And Unlink In Transaction", func(t *testing.T) {
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		err := uow.WorkspacePaperRepository().Create(ctx, &entity.WorkspacePaper{
			WorkspaceId: workspace.Id,
			PaperId:     paper.Id,
		})
		require.NoError(t, err)

		papers, err := uow.PaperRepository().FindAllByWorkspaceId(ctx, workspace.Id)
		require.NoError(t, err)
		require.Len(t, papers, 1)
		assert.Equal(t, paper.Id, papers[0].Id)

		affected, err := uow.WorkspacePaperRepository().Delete(ctx, workspace.Id, paper.Id)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		require.NoError(t, uow.Commit())
	})

	t.Run("Unlink Missing Association", func(t *testing.T) {
		affected, err := uow.WorkspacePaperRepository().Delete(ctx, workspace.Id, uuid.New())
		require.NoError(t, err)
		assert.EqualValues(t, 0, affected)
	})
}

func TestConversationOwnershipScope(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()

	owner := &entity.User{
		Id:           uuid.New(),
		Email:        "owner-" + uuid.New().String() + "@example.com",
		FullName:     "Owner",
		PasswordHash: "x",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))

	workspace := &entity.Workspace{
		Id:     uuid.New(),
		UserId: owner.Id,
		Name:   "Owner Workspace",
	}
	require.NoError(t, uow.WorkspaceRepository().Create(ctx, workspace))

	conversation := &entity.Conversation{
		Id:          uuid.New(),
		WorkspaceId: workspace.Id,
		Title:       "Scoped Conversation",
	}
	require.NoError(t, uow.ConversationRepository().Create(ctx, conversation))

	found, err := uow.ConversationRepository().FindOneOwned(ctx, conversation.Id, owner.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, conversation.Id, found.Id)

	// Another user's lookup behaves exactly like a missing conversation.
	stranger, err := uow.ConversationRepository().FindOneOwned(ctx, conversation.Id, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stranger)
}
