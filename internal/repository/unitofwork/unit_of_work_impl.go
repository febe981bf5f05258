package unitofwork

import (
	"context"
	"fmt"

	"mentora-be/internal/repository/contract"
	"mentora-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) SubjectRepository() contract.SubjectRepository {
	return implementation.NewSubjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UnitRepository() contract.UnitRepository {
	return implementation.NewUnitRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ArchiveRepository() contract.ArchiveRepository {
	return implementation.NewArchiveRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InfoRepository() contract.InfoRepository {
	return implementation.NewInfoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KnowledgeRepository() contract.KnowledgeRepository {
	return implementation.NewKnowledgeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UnansweredQueryRepository() contract.UnansweredQueryRepository {
	return implementation.NewUnansweredQueryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SynonymRepository() contract.SynonymRepository {
	return implementation.NewSynonymRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CredentialRepository() contract.CredentialRepository {
	return implementation.NewCredentialRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminUserRepository() contract.AdminUserRepository {
	return implementation.NewAdminUserRepository(u.getDB())
}
