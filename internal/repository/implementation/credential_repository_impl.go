package implementation

import (
	"context"
	"errors"

	"mentora-be/internal/entity"
	"mentora-be/internal/mapper"
	"mentora-be/internal/model"
	"mentora-be/internal/repository/contract"
	"mentora-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CredentialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CredentialMapper
}

func NewCredentialRepository(db *gorm.DB) contract.CredentialRepository {
	return &CredentialRepositoryImpl{
		db:     db,
		mapper: mapper.NewCredentialMapper(),
	}
}

func (r *CredentialRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CredentialRepositoryImpl) Create(ctx context.Context, credential *entity.ChatbotCredential) error {
	m := r.mapper.ToModel(credential)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*credential = *r.mapper.ToEntity(m)
	return nil
}

func (r *CredentialRepositoryImpl) Update(ctx context.Context, credential *entity.ChatbotCredential) error {
	m := r.mapper.ToModel(credential)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*credential = *r.mapper.ToEntity(m)
	return nil
}

func (r *CredentialRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotCredential, error) {
	var m model.ChatbotCredential
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CredentialMapper
}

func NewAdminUserRepository(db *gorm.DB) contract.AdminUserRepository {
	return &AdminUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewCredentialMapper(),
	}
}

func (r *AdminUserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, admin *entity.AdminUser) error {
	m := r.mapper.AdminToModel(admin)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*admin = *r.mapper.AdminToEntity(m)
	return nil
}

func (r *AdminUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	var m model.AdminUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AdminToEntity(&m), nil
}
