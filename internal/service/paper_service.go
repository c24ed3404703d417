package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"paperspace-be/internal/constant"
	"paperspace-be/internal/dto"
	"paperspace-be/internal/entity"
	"paperspace-be/internal/pkg/apperrors"
	"paperspace-be/internal/repository/specification"
	"paperspace-be/internal/repository/unitofwork"
	"paperspace-be/pkg/arxiv"
	"paperspace-be/pkg/embedding"
	"paperspace-be/pkg/events"
	pkgNats "paperspace-be/pkg/nats"
	"paperspace-be/pkg/pdftext"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	uploadAbstractLimit  = 500
	uploadEmbeddingLimit = 1000
)

type IPaperService interface {
	SearchPapers(ctx context.Context, req *dto.SearchPapersRequest) ([]*dto.PaperResponse, error)
	UploadPaper(ctx context.Context, req *dto.UploadPaperRequest) (*dto.PaperResponse, error)
	ImportPaper(ctx context.Context, userId uuid.UUID, req *dto.ImportPaperRequest) error
	GetWorkspacePapers(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.PaperResponse, error)
	RemovePaper(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, paperId uuid.UUID) error
}

type paperService struct {
	uowFactory        unitofwork.RepositoryFactory
	arxivClient       *arxiv.Client
	embeddingProvider embedding.EmbeddingProvider
	publisherService  IPublisherService
	eventPublisher    *pkgNats.Publisher
}

func NewPaperService(
	uowFactory unitofwork.RepositoryFactory,
	arxivClient *arxiv.Client,
	embeddingProvider embedding.EmbeddingProvider,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
) IPaperService {
	return &paperService{
		uowFactory:        uowFactory,
		arxivClient:       arxivClient,
		embeddingProvider: embeddingProvider,
		publisherService:  publisherService,
		eventPublisher:    eventPublisher,
	}
}

func toPaperResponse(p *entity.Paper) *dto.PaperResponse {
	authors := p.Authors
	if authors == nil {
		authors = []string{}
	}
	return &dto.PaperResponse{
		Id:              p.Id,
		Title:           p.Title,
		Authors:         authors,
		Abstract:        p.Abstract,
		PublicationDate: p.PublicationDate,
		PdfUrl:          p.PdfUrl,
		ArxivId:         p.ArxivId,
		Doi:             p.Doi,
		CreatedAt:       p.CreatedAt,
	}
}

func (s *paperService) SearchPapers(ctx context.Context, req *dto.SearchPapersRequest) ([]*dto.PaperResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	results, err := s.arxivClient.Search(ctx, req.Query, limit)
	if err != nil {
		return nil, apperrors.Upstream("failed to search arxiv", err)
	}

	// Generate all embeddings before touching the database, so a slow or
	// failing embedding backend never holds a transaction open.
	papers := make([]*entity.Paper, len(results))
	for i, result := range results {
		res, err := s.embeddingProvider.Generate(result.Title+" "+result.Abstract, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return nil, apperrors.Embedding("failed to generate embedding for search result", err)
		}

		paper := &entity.Paper{
			Id:              uuid.New(),
			Title:           result.Title,
			Authors:         result.Authors,
			Abstract:        result.Abstract,
			PublicationDate: result.PublicationDate,
			Embedding:       res.Embedding.Values,
			CreatedAt:       time.Now(),
		}
		if result.ArxivId != "" {
			paper.ArxivId = &result.ArxivId
			paper.PdfUrl = &result.PdfUrl
		}
		papers[i] = paper
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Persistence("failed to begin transaction", err)
	}
	defer uow.Rollback()

	res := make([]*dto.PaperResponse, len(papers))
	for i, paper := range papers {
		if err := uow.PaperRepository().UpsertByArxivId(ctx, paper); err != nil {
			return nil, apperrors.Persistence("failed to store search result", err)
		}
		res[i] = toPaperResponse(paper)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperrors.Persistence("failed to commit search results", err)
	}

	return res, nil
}

func (s *paperService) UploadPaper(ctx context.Context, req *dto.UploadPaperRequest) (*dto.PaperResponse, error) {
	if !strings.HasSuffix(strings.ToLower(req.Filename), ".pdf") {
		return nil, apperrors.Validation("only PDF files are allowed")
	}

	extractedText, err := pdftext.Extract(req.Content)
	if err != nil {
		return nil, apperrors.Extraction("failed to extract text from PDF", err)
	}

	title := req.Title
	if title == "" {
		title = req.Filename
	}

	var authors []string
	if req.Authors != "" {
		for _, a := range strings.Split(req.Authors, ",") {
			authors = append(authors, strings.TrimSpace(a))
		}
	}

	embedText := extractedText
	if len(embedText) > uploadEmbeddingLimit {
		embedText = embedText[:uploadEmbeddingLimit]
	}
	embRes, err := s.embeddingProvider.Generate(req.Title+" "+embedText, "RETRIEVAL_DOCUMENT")
	if err != nil {
		return nil, apperrors.Embedding("failed to generate embedding for upload", err)
	}

	abstract := extractedText
	if len(abstract) > uploadAbstractLimit {
		abstract = abstract[:uploadAbstractLimit]
	}

	paper := &entity.Paper{
		Id:        uuid.New(),
		Title:     title,
		Authors:   authors,
		Abstract:  abstract,
		PdfText:   &extractedText,
		Embedding: embRes.Embedding.Values,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PaperRepository().Create(ctx, paper); err != nil {
		return nil, apperrors.Persistence("failed to store paper", err)
	}

	// Full-text chunking happens in the background consumer. The paper
	// row is already stored, so a queue failure only costs the chunks.
	payload, err := json.Marshal(dto.PublishEmbedPaperMessage{PaperId: paper.Id})
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal embed message for paper %s: %v\n", paper.Id, err)
	} else if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish embed message for paper %s: %v\n", paper.Id, err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventPaperUploaded,
			Data: map[string]interface{}{
				"paper_id": paper.Id,
				"title":    paper.Title,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PAPER_UPLOADED event: %v\n", err)
		}
	}

	return toPaperResponse(paper), nil
}

func (s *paperService) ImportPaper(ctx context.Context, userId uuid.UUID, req *dto.ImportPaperRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, req.WorkspaceId)
	if err != nil {
		return err
	}

	paper, err := uow.PaperRepository().FindOne(ctx, specification.ByID{ID: req.PaperId})
	if err != nil {
		return apperrors.Persistence("failed to load paper", err)
	}
	if paper == nil {
		return apperrors.NotFound("paper not found")
	}

	workspacePaper := &entity.WorkspacePaper{
		WorkspaceId: workspace.Id,
		PaperId:     paper.Id,
		AddedAt:     time.Now(),
	}
	if err := uow.WorkspacePaperRepository().Create(ctx, workspacePaper); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("paper already in workspace")
		}
		return apperrors.Persistence("failed to import paper", err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventPaperImported,
			Data: map[string]interface{}{
				"workspace_id": workspace.Id,
				"paper_id":     paper.Id,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PAPER_IMPORTED event: %v\n", err)
		}
	}

	return nil
}

func (s *paperService) GetWorkspacePapers(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID) ([]*dto.PaperResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	papers, err := uow.PaperRepository().FindAllByWorkspaceId(ctx, workspace.Id)
	if err != nil {
		return nil, apperrors.Persistence("failed to list workspace papers", err)
	}

	res := make([]*dto.PaperResponse, len(papers))
	for i, p := range papers {
		res[i] = toPaperResponse(p)
	}
	return res, nil
}

func (s *paperService) RemovePaper(ctx context.Context, userId uuid.UUID, workspaceId uuid.UUID, paperId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := findOwnedWorkspace(ctx, uow, userId, workspaceId)
	if err != nil {
		return err
	}

	affected, err := uow.WorkspacePaperRepository().Delete(ctx, workspace.Id, paperId)
	if err != nil {
		return apperrors.Persistence("failed to remove paper", err)
	}
	if affected == 0 {
		return apperrors.NotFound("paper not found in workspace")
	}
	return nil
}
