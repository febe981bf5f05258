package mapper

import (
	"time"

	"mentora-be/internal/entity"
	"mentora-be/internal/model"
)

type InfoMapper struct{}

func NewInfoMapper() *InfoMapper {
	return &InfoMapper{}
}

func (m *InfoMapper) ToEntity(i *model.InfoItem) *entity.InfoItem {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.InfoItem{
		Id:        i.Id,
		Category:  i.Category,
		Title:     i.Title,
		Content:   i.Content,
		Keywords:  keywordsFromJSON(i.Keywords),
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InfoMapper) ToModel(i *entity.InfoItem) *model.InfoItem {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.InfoItem{
		Id:        i.Id,
		Category:  i.Category,
		Title:     i.Title,
		Content:   i.Content,
		Keywords:  keywordsToJSON(i.Keywords),
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InfoMapper) ToEntities(items []*model.InfoItem) []*entity.InfoItem {
	entities := make([]*entity.InfoItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}

func (m *InfoMapper) KnowledgeToEntity(k *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if k == nil {
		return nil
	}
	return &entity.KnowledgeEntry{
		Id:        k.Id,
		Question:  k.Question,
		Answer:    k.Answer,
		CreatedAt: k.CreatedAt,
	}
}

func (m *InfoMapper) KnowledgeToModel(k *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if k == nil {
		return nil
	}
	return &model.KnowledgeEntry{
		Id:        k.Id,
		Question:  k.Question,
		Answer:    k.Answer,
		CreatedAt: k.CreatedAt,
	}
}

func (m *InfoMapper) KnowledgeToEntities(entries []*model.KnowledgeEntry) []*entity.KnowledgeEntry {
	entities := make([]*entity.KnowledgeEntry, len(entries))
	for i, k := range entries {
		entities[i] = m.KnowledgeToEntity(k)
	}
	return entities
}

func (m *InfoMapper) UnansweredToEntity(q *model.UnansweredQuery) *entity.UnansweredQuery {
	if q == nil {
		return nil
	}
	return &entity.UnansweredQuery{
		Id:        q.Id,
		Query:     q.Query,
		AskedAt:   q.AskedAt,
		CreatedAt: q.CreatedAt,
	}
}

func (m *InfoMapper) UnansweredToModel(q *entity.UnansweredQuery) *model.UnansweredQuery {
	if q == nil {
		return nil
	}
	return &model.UnansweredQuery{
		Id:        q.Id,
		Query:     q.Query,
		AskedAt:   q.AskedAt,
		CreatedAt: q.CreatedAt,
	}
}

func (m *InfoMapper) UnansweredToEntities(queries []*model.UnansweredQuery) []*entity.UnansweredQuery {
	entities := make([]*entity.UnansweredQuery, len(queries))
	for i, q := range queries {
		entities[i] = m.UnansweredToEntity(q)
	}
	return entities
}
