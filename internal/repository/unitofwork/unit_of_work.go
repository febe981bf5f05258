package unitofwork

import (
	"context"

	"mentora-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SubjectRepository() contract.SubjectRepository
	UnitRepository() contract.UnitRepository
	ArchiveRepository() contract.ArchiveRepository

	InfoRepository() contract.InfoRepository
	KnowledgeRepository() contract.KnowledgeRepository
	UnansweredQueryRepository() contract.UnansweredQueryRepository
	SynonymRepository() contract.SynonymRepository
	CredentialRepository() contract.CredentialRepository
	AdminUserRepository() contract.AdminUserRepository
}
