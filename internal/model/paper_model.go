package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Paper struct {
	Id              uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string                      `gorm:"type:text;not null"`
	Authors         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Abstract        string                      `gorm:"type:text"`
	PublicationDate *time.Time                  `gorm:"type:date"`
	PdfUrl          *string                     `gorm:"type:text"`
	ArxivId         *string                     `gorm:"type:varchar(64);uniqueIndex:idx_papers_arxiv_id,where:arxiv_id IS NOT NULL"`
	Doi             *string                     `gorm:"type:varchar(255)"`
	PdfText         *string                     `gorm:"type:text"`
	Embedding       *pgvector.Vector            `gorm:"type:vector(768)"` // nomic-embed-text / text-embedding-004 dimension
	CreatedAt       time.Time                   `gorm:"autoCreateTime"`
}

func (Paper) TableName() string {
	return "papers"
}
