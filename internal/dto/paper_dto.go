package dto

import (
	"time"

	"github.com/google/uuid"
)

type SearchPapersRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type PaperResponse struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Authors         []string   `json:"authors"`
	Abstract        string     `json:"abstract"`
	PublicationDate *time.Time `json:"publication_date"`
	PdfUrl          *string    `json:"pdf_url"`
	ArxivId         *string    `json:"arxiv_id"`
	Doi             *string    `json:"doi"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ImportPaperRequest struct {
	WorkspaceId uuid.UUID `json:"workspace_id" validate:"required"`
	PaperId     uuid.UUID `json:"paper_id" validate:"required"`
}

type UploadPaperRequest struct {
	Filename string
	Title    string
	Authors  string // comma separated
	Content  []byte
}

// PublishEmbedPaperMessage is the background queue payload asking the
// consumer to chunk and embed a paper's full text.
type PublishEmbedPaperMessage struct {
	PaperId uuid.UUID `json:"paper_id"`
}
