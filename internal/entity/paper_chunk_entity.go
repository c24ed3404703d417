package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaperChunk is one embedded slice of a paper's extracted full text,
// produced by the background embedding consumer.
type PaperChunk struct {
	Id         uuid.UUID
	PaperId    uuid.UUID
	ChunkIndex int
	Document   string
	Embedding  []float32
	CreatedAt  time.Time
}
