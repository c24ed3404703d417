package mapper

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/model"
)

type PaperMapper struct{}

func NewPaperMapper() *PaperMapper {
	return &PaperMapper{}
}

func (m *PaperMapper) ToEntity(p *model.Paper) *entity.Paper {
	if p == nil {
		return nil
	}

	var embedding []float32
	if p.Embedding != nil {
		embedding = p.Embedding.Slice()
	}

	return &entity.Paper{
		Id:              p.Id,
		Title:           p.Title,
		Authors:         []string(p.Authors),
		Abstract:        p.Abstract,
		PublicationDate: p.PublicationDate,
		PdfUrl:          p.PdfUrl,
		ArxivId:         p.ArxivId,
		Doi:             p.Doi,
		PdfText:         p.PdfText,
		Embedding:       embedding,
		CreatedAt:       p.CreatedAt,
	}
}

func (m *PaperMapper) ToModel(p *entity.Paper) *model.Paper {
	if p == nil {
		return nil
	}

	var embedding *pgvector.Vector
	if p.Embedding != nil {
		v := pgvector.NewVector(p.Embedding)
		embedding = &v
	}

	return &model.Paper{
		Id:              p.Id,
		Title:           p.Title,
		Authors:         datatypes.NewJSONSlice(p.Authors),
		Abstract:        p.Abstract,
		PublicationDate: p.PublicationDate,
		PdfUrl:          p.PdfUrl,
		ArxivId:         p.ArxivId,
		Doi:             p.Doi,
		PdfText:         p.PdfText,
		Embedding:       embedding,
		CreatedAt:       p.CreatedAt,
	}
}

func (m *PaperMapper) ToEntities(papers []*model.Paper) []*entity.Paper {
	entities := make([]*entity.Paper, len(papers))
	for i, p := range papers {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PaperMapper) ToModels(papers []*entity.Paper) []*model.Paper {
	models := make([]*model.Paper, len(papers))
	for i, p := range papers {
		models[i] = m.ToModel(p)
	}
	return models
}
