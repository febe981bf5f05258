package mapper

import (
	"mentora-be/internal/entity"
	"mentora-be/internal/model"
)

type SynonymMapper struct{}

func NewSynonymMapper() *SynonymMapper {
	return &SynonymMapper{}
}

func (m *SynonymMapper) ToEntity(s *model.Synonym) *entity.Synonym {
	if s == nil {
		return nil
	}
	return &entity.Synonym{
		Id:         s.Id,
		Canonical:  s.Canonical,
		Alternates: keywordsFromJSON(s.Alternates),
	}
}

func (m *SynonymMapper) ToModel(s *entity.Synonym) *model.Synonym {
	if s == nil {
		return nil
	}
	return &model.Synonym{
		Id:         s.Id,
		Canonical:  s.Canonical,
		Alternates: keywordsToJSON(s.Alternates),
	}
}

func (m *SynonymMapper) ToEntities(synonyms []*model.Synonym) []*entity.Synonym {
	entities := make([]*entity.Synonym, len(synonyms))
	for i, s := range synonyms {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
