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

type InfoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InfoMapper
}

func NewInfoRepository(db *gorm.DB) contract.InfoRepository {
	return &InfoRepositoryImpl{
		db:     db,
		mapper: mapper.NewInfoMapper(),
	}
}

func (r *InfoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InfoRepositoryImpl) Create(ctx context.Context, item *entity.InfoItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *InfoRepositoryImpl) Update(ctx context.Context, item *entity.InfoItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *InfoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InfoItem{}, id).Error
}

func (r *InfoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InfoItem, error) {
	var m model.InfoItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InfoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InfoItem, error) {
	var models []*model.InfoItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InfoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InfoItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InfoMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewInfoMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, entry *entity.KnowledgeEntry) error {
	m := r.mapper.KnowledgeToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.KnowledgeToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeEntry{}, id).Error
}

func (r *KnowledgeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	var m model.KnowledgeEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.KnowledgeToEntity(&m), nil
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	var models []*model.KnowledgeEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.KnowledgeToEntities(models), nil
}

type UnansweredQueryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InfoMapper
}

func NewUnansweredQueryRepository(db *gorm.DB) contract.UnansweredQueryRepository {
	return &UnansweredQueryRepositoryImpl{
		db:     db,
		mapper: mapper.NewInfoMapper(),
	}
}

func (r *UnansweredQueryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UnansweredQueryRepositoryImpl) Create(ctx context.Context, query *entity.UnansweredQuery) error {
	m := r.mapper.UnansweredToModel(query)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*query = *r.mapper.UnansweredToEntity(m)
	return nil
}

func (r *UnansweredQueryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UnansweredQuery{}, id).Error
}

func (r *UnansweredQueryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UnansweredQuery, error) {
	var models []*model.UnansweredQuery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.UnansweredToEntities(models), nil
}

func (r *UnansweredQueryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UnansweredQuery{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
