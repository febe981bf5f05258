package mapper

import (
	"mentora-be/internal/entity"
	"mentora-be/internal/model"
)

type ArchiveMapper struct{}

func NewArchiveMapper() *ArchiveMapper {
	return &ArchiveMapper{}
}

func (m *ArchiveMapper) ToEntity(d *model.ArchiveDocument) *entity.ArchiveDocument {
	if d == nil {
		return nil
	}
	return &entity.ArchiveDocument{
		Id:         d.Id,
		Name:       d.Name,
		Type:       d.Type,
		Filename:   d.Filename,
		Keywords:   keywordsFromJSON(d.Keywords),
		UploadedAt: d.UploadedAt,
	}
}

func (m *ArchiveMapper) ToModel(d *entity.ArchiveDocument) *model.ArchiveDocument {
	if d == nil {
		return nil
	}
	return &model.ArchiveDocument{
		Id:         d.Id,
		Name:       d.Name,
		Type:       d.Type,
		Filename:   d.Filename,
		Keywords:   keywordsToJSON(d.Keywords),
		UploadedAt: d.UploadedAt,
	}
}

func (m *ArchiveMapper) ToEntities(docs []*model.ArchiveDocument) []*entity.ArchiveDocument {
	entities := make([]*entity.ArchiveDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
