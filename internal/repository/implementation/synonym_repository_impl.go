package implementation

import (
	"context"
	"errors"

	"mentora-be/internal/entity"
	"mentora-be/internal/mapper"
	"mentora-be/internal/model"
	"mentora-be/internal/repository/contract"
	"mentora-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SynonymRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SynonymMapper
}

func NewSynonymRepository(db *gorm.DB) contract.SynonymRepository {
	return &SynonymRepositoryImpl{
		db:     db,
		mapper: mapper.NewSynonymMapper(),
	}
}

func (r *SynonymRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SynonymRepositoryImpl) Create(ctx context.Context, synonym *entity.Synonym) error {
	m := r.mapper.ToModel(synonym)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*synonym = *r.mapper.ToEntity(m)
	return nil
}

func (r *SynonymRepositoryImpl) Update(ctx context.Context, synonym *entity.Synonym) error {
	m := r.mapper.ToModel(synonym)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*synonym = *r.mapper.ToEntity(m)
	return nil
}

func (r *SynonymRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Synonym{}, id).Error
}

func (r *SynonymRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Synonym, error) {
	var m model.Synonym
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SynonymRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Synonym, error) {
	var models []*model.Synonym
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
