package mapper

import (
	"time"

	"mentora-be/internal/entity"
	"mentora-be/internal/model"
)

type SubjectMapper struct{}

func NewSubjectMapper() *SubjectMapper {
	return &SubjectMapper{}
}

func (m *SubjectMapper) ToEntity(s *model.Subject) *entity.Subject {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	units := make([]*entity.Unit, len(s.Units))
	for i := range s.Units {
		units[i] = m.UnitToEntity(&s.Units[i])
	}

	return &entity.Subject{
		Id:        s.Id,
		Name:      s.Name,
		Keywords:  keywordsFromJSON(s.Keywords),
		Units:     units,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SubjectMapper) ToModel(s *entity.Subject) *model.Subject {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Subject{
		Id:        s.Id,
		Name:      s.Name,
		Keywords:  keywordsToJSON(s.Keywords),
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SubjectMapper) ToEntities(subjects []*model.Subject) []*entity.Subject {
	entities := make([]*entity.Subject, len(subjects))
	for i, s := range subjects {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SubjectMapper) UnitToEntity(u *model.Unit) *entity.Unit {
	if u == nil {
		return nil
	}
	return &entity.Unit{
		Id:         u.Id,
		SubjectId:  u.SubjectId,
		Name:       u.Name,
		Filename:   u.Filename,
		Keywords:   keywordsFromJSON(u.Keywords),
		UploadedAt: u.UploadedAt,
	}
}

func (m *SubjectMapper) UnitToModel(u *entity.Unit) *model.Unit {
	if u == nil {
		return nil
	}
	return &model.Unit{
		Id:         u.Id,
		SubjectId:  u.SubjectId,
		Name:       u.Name,
		Filename:   u.Filename,
		Keywords:   keywordsToJSON(u.Keywords),
		UploadedAt: u.UploadedAt,
	}
}
