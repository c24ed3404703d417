package mapper

import (
	"github.com/pgvector/pgvector-go"

	"paperspace-be/internal/entity"
	"paperspace-be/internal/model"
)

type PaperChunkMapper struct{}

func NewPaperChunkMapper() *PaperChunkMapper {
	return &PaperChunkMapper{}
}

func (m *PaperChunkMapper) ToEntity(c *model.PaperChunk) *entity.PaperChunk {
	if c == nil {
		return nil
	}

	return &entity.PaperChunk{
		Id:         c.Id,
		PaperId:    c.PaperId,
		ChunkIndex: c.ChunkIndex,
		Document:   c.Document,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *PaperChunkMapper) ToModel(c *entity.PaperChunk) *model.PaperChunk {
	if c == nil {
		return nil
	}

	return &model.PaperChunk{
		Id:         c.Id,
		PaperId:    c.PaperId,
		ChunkIndex: c.ChunkIndex,
		Document:   c.Document,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *PaperChunkMapper) ToModels(chunks []*entity.PaperChunk) []*model.PaperChunk {
	models := make([]*model.PaperChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}

func (m *PaperChunkMapper) ToEntities(chunks []*model.PaperChunk) []*entity.PaperChunk {
	entities := make([]*entity.PaperChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
