package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"paperspace-be/internal/dto"
	"paperspace-be/internal/entity"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/repository/unitofwork"
	"paperspace-be/pkg/embedding"
	"paperspace-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPaperMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing chunk embeddings for PaperId: %s", payload.PaperId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	paper, err := uow.PaperRepository().FindOne(ctx, specification.ByID{ID: payload.PaperId})
	if err != nil {
		log.Printf("[ERROR] Failed to get paper %s: %v", payload.PaperId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if paper == nil {
		log.Printf("[ERROR] Paper not found: %s", payload.PaperId)
		msg.Ack() // Paper deleted? Ack.
		return
	}
	if paper.PdfText == nil || *paper.PdfText == "" {
		log.Printf("[INFO] Paper %s has no full text, skipping", payload.PaperId)
		msg.Ack()
		return
	}

	content := *paper.PdfText
	log.Printf("[INFO] Generating chunk embeddings for paper %s (content length: %d)", payload.PaperId, len(content))

	// ChunkSize: 1500 chars (approx 375 tokens), Overlap: 200 chars
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newChunks []*entity.PaperChunk

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of paper %s: %v", i, payload.PaperId, err)
			msg.Nack()
			return
		}

		newChunks = append(newChunks, &entity.PaperChunk{
			Id:         uuid.New(),
			PaperId:    paper.Id,
			ChunkIndex: i,
			Document:   chunk,
			Embedding:  res.Embedding.Values,
			CreatedAt:  time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	log.Printf("[INFO] Deleting old chunks for paper %s", payload.PaperId)
	if err := uow.PaperChunkRepository().DeleteByPaperId(ctx, paper.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old chunks: %v", err)
		msg.Nack()
		return
	}

	if len(newChunks) > 0 {
		if err := uow.PaperChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			log.Printf("[ERROR] Failed to create bulk chunks: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Paper processed: %d chunks for PaperId: %s", len(newChunks), payload.PaperId)
	msg.Ack()
}
