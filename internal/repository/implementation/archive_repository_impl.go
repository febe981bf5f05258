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

type ArchiveRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArchiveMapper
}

func NewArchiveRepository(db *gorm.DB) contract.ArchiveRepository {
	return &ArchiveRepositoryImpl{
		db:     db,
		mapper: mapper.NewArchiveMapper(),
	}
}

func (r *ArchiveRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ArchiveRepositoryImpl) Create(ctx context.Context, doc *entity.ArchiveDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArchiveRepositoryImpl) Update(ctx context.Context, doc *entity.ArchiveDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArchiveRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ArchiveDocument{}, id).Error
}

func (r *ArchiveRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ArchiveDocument, error) {
	var m model.ArchiveDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ArchiveRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchiveDocument, error) {
	var models []*model.ArchiveDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ArchiveRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ArchiveDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
