package bootstrap

import (
	"log"

	"paperspace-be/internal/config"
	"paperspace-be/internal/controller"
	"paperspace-be/internal/pkg/logger"
	"paperspace-be/internal/repository/unitofwork"
	"paperspace-be/internal/service"
	"paperspace-be/pkg/arxiv"
	"paperspace-be/pkg/embedding"
	"paperspace-be/pkg/llm/factory"
	pkgNats "paperspace-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	WorkspaceController controller.IWorkspaceController
	PaperController     controller.IPaperController
	ChatController      controller.IChatController
	ConsumerService     service.IConsumerService
	Logger              logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		log.Printf("INFO: Using Gemini embedding provider")
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	default:
		log.Printf("INFO: Using Ollama embedding provider (model: %s)", cfg.Ai.OllamaModel)
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	}

	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL, cfg.Keys.Groq)
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider: %v", err)
	}
	log.Printf("INFO: Using %s LLM provider (model: %s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("Warning: NATS publisher unavailable: %v", err)
		natsPub = nil
	}

	arxivClient := arxiv.NewClient("")

	publisherService := service.NewPublisherService(cfg.Keys.EmbedPaperTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.EmbedPaperTopic, uowFactory, embeddingProvider)

	authService := service.NewAuthService(uowFactory, natsPub)
	workspaceService := service.NewWorkspaceService(uowFactory)
	paperService := service.NewPaperService(uowFactory, arxivClient, embeddingProvider, publisherService, natsPub)
	chatService := service.NewChatService(uowFactory, llmProvider)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		WorkspaceController: controller.NewWorkspaceController(workspaceService),
		PaperController:     controller.NewPaperController(paperService),
		ChatController:      controller.NewChatController(chatService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
