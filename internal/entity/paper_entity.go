package entity

import (
	"time"

	"github.com/google/uuid"
)

// Paper is a bibliographic record shared across workspaces. ArxivId is the
// natural key for deduplication: at most one paper exists per non-nil id.
type Paper struct {
	Id              uuid.UUID
	Title           string
	Authors         []string
	Abstract        string
	PublicationDate *time.Time
	PdfUrl          *string
	ArxivId         *string
	Doi             *string
	PdfText         *string
	Embedding       []float32 // nil until computed
	CreatedAt       time.Time
}
