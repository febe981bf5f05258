package service

import (
	"context"
	"time"

	"mentora-be/internal/dto"
	"mentora-be/internal/entity"
	"mentora-be/internal/repository/specification"
	"mentora-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IArchiveService interface {
	Create(ctx context.Context, req *dto.CreateArchiveDocumentRequest) (*dto.ArchiveDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, docType string) ([]*dto.ArchiveDocumentResponse, error)
}

type archiveService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewArchiveService(uowFactory unitofwork.RepositoryFactory) IArchiveService {
	return &archiveService{uowFactory: uowFactory}
}

func (s *archiveService) Create(ctx context.Context, req *dto.CreateArchiveDocumentRequest) (*dto.ArchiveDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc := &entity.ArchiveDocument{
		Id:         uuid.New(),
		Name:       req.Name,
		Type:       req.Type,
		Filename:   req.Filename,
		Keywords:   req.Keywords,
		UploadedAt: time.Now(),
	}
	if err := uow.ArchiveRepository().Create(ctx, doc); err != nil {
		return nil, err
	}
	return archiveToResponse(doc), nil
}

func (s *archiveService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ArchiveRepository().Delete(ctx, id)
}

// List returns all documents, optionally narrowed to one type.
func (s *archiveService) List(ctx context.Context, docType string) ([]*dto.ArchiveDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "uploaded_at", Desc: true}}
	if docType != "" {
		specs = append(specs, specification.ByDocumentType{Type: docType})
	}

	docs, err := uow.ArchiveRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ArchiveDocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = archiveToResponse(doc)
	}
	return responses, nil
}

func archiveToResponse(doc *entity.ArchiveDocument) *dto.ArchiveDocumentResponse {
	return &dto.ArchiveDocumentResponse{
		Id:         doc.Id.String(),
		Name:       doc.Name,
		Type:       doc.Type,
		Filename:   doc.Filename,
		Keywords:   doc.Keywords,
		UploadedAt: doc.UploadedAt,
	}
}
