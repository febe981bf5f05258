package service

import (
	"context"
	"errors"
	"time"

	"mentora-be/internal/dto"
	"mentora-be/internal/entity"
	"mentora-be/internal/repository/specification"
	"mentora-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrInfoItemNotFound = errors.New("info item not found")

// IInfoService manages the answer corpora behind the info_or_unknown
// path: info items, literal Q&A pairs, recorded unanswered queries and
// the synonym table.
type IInfoService interface {
	CreateInfoItem(ctx context.Context, req *dto.CreateInfoItemRequest) (*dto.InfoItemResponse, error)
	UpdateInfoItem(ctx context.Context, id uuid.UUID, req *dto.CreateInfoItemRequest) (*dto.InfoItemResponse, error)
	DeleteInfoItem(ctx context.Context, id uuid.UUID) error
	ListInfoItems(ctx context.Context, category string) ([]*dto.InfoItemResponse, error)

	CreateKnowledgeEntry(ctx context.Context, req *dto.CreateKnowledgeEntryRequest) (*dto.KnowledgeEntryResponse, error)
	DeleteKnowledgeEntry(ctx context.Context, id uuid.UUID) error
	ListKnowledgeEntries(ctx context.Context) ([]*dto.KnowledgeEntryResponse, error)

	ListUnansweredQueries(ctx context.Context) ([]*dto.UnansweredQueryResponse, error)
	DeleteUnansweredQuery(ctx context.Context, id uuid.UUID) error

	CreateSynonym(ctx context.Context, req *dto.CreateSynonymRequest) (*dto.SynonymResponse, error)
	DeleteSynonym(ctx context.Context, id uuid.UUID) error
	ListSynonyms(ctx context.Context) ([]*dto.SynonymResponse, error)
}

type infoService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInfoService(uowFactory unitofwork.RepositoryFactory) IInfoService {
	return &infoService{uowFactory: uowFactory}
}

func (s *infoService) CreateInfoItem(ctx context.Context, req *dto.CreateInfoItemRequest) (*dto.InfoItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item := &entity.InfoItem{
		Id:        uuid.New(),
		Category:  req.Category,
		Title:     req.Title,
		Content:   req.Content,
		Keywords:  req.Keywords,
		CreatedAt: time.Now(),
	}
	if err := uow.InfoRepository().Create(ctx, item); err != nil {
		return nil, err
	}
	return infoItemToResponse(item), nil
}

func (s *infoService) UpdateInfoItem(ctx context.Context, id uuid.UUID, req *dto.CreateInfoItemRequest) (*dto.InfoItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.InfoRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrInfoItemNotFound
	}

	now := time.Now()
	item.Category = req.Category
	item.Title = req.Title
	item.Content = req.Content
	item.Keywords = req.Keywords
	item.UpdatedAt = &now
	if err := uow.InfoRepository().Update(ctx, item); err != nil {
		return nil, err
	}
	return infoItemToResponse(item), nil
}

func (s *infoService) DeleteInfoItem(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InfoRepository().Delete(ctx, id)
}

func (s *infoService) ListInfoItems(ctx context.Context, category string) ([]*dto.InfoItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	items, err := uow.InfoRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.InfoItemResponse, len(items))
	for i, item := range items {
		responses[i] = infoItemToResponse(item)
	}
	return responses, nil
}

func (s *infoService) CreateKnowledgeEntry(ctx context.Context, req *dto.CreateKnowledgeEntryRequest) (*dto.KnowledgeEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.KnowledgeEntry{
		Id:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		CreatedAt: time.Now(),
	}
	if err := uow.KnowledgeRepository().Create(ctx, entry); err != nil {
		return nil, err
	}
	return &dto.KnowledgeEntryResponse{
		Id:       entry.Id.String(),
		Question: entry.Question,
		Answer:   entry.Answer,
	}, nil
}

func (s *infoService) DeleteKnowledgeEntry(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.KnowledgeRepository().Delete(ctx, id)
}

func (s *infoService) ListKnowledgeEntries(ctx context.Context) ([]*dto.KnowledgeEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.KnowledgeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.KnowledgeEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = &dto.KnowledgeEntryResponse{
			Id:       entry.Id.String(),
			Question: entry.Question,
			Answer:   entry.Answer,
		}
	}
	return responses, nil
}

func (s *infoService) ListUnansweredQueries(ctx context.Context) ([]*dto.UnansweredQueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	queries, err := uow.UnansweredQueryRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UnansweredQueryResponse, len(queries))
	for i, query := range queries {
		responses[i] = &dto.UnansweredQueryResponse{
			Id:      query.Id.String(),
			Query:   query.Query,
			AskedAt: query.AskedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

func (s *infoService) DeleteUnansweredQuery(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UnansweredQueryRepository().Delete(ctx, id)
}

func (s *infoService) CreateSynonym(ctx context.Context, req *dto.CreateSynonymRequest) (*dto.SynonymResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.SynonymRepository().FindOne(ctx, specification.ByCanonical{Canonical: req.Canonical})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("synonym already defined for this term")
	}

	synonym := &entity.Synonym{
		Id:         uuid.New(),
		Canonical:  req.Canonical,
		Alternates: req.Alternates,
	}
	if err := uow.SynonymRepository().Create(ctx, synonym); err != nil {
		return nil, err
	}
	return synonymToResponse(synonym), nil
}

func (s *infoService) DeleteSynonym(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SynonymRepository().Delete(ctx, id)
}

func (s *infoService) ListSynonyms(ctx context.Context) ([]*dto.SynonymResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	synonyms, err := uow.SynonymRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SynonymResponse, len(synonyms))
	for i, synonym := range synonyms {
		responses[i] = synonymToResponse(synonym)
	}
	return responses, nil
}

func infoItemToResponse(item *entity.InfoItem) *dto.InfoItemResponse {
	return &dto.InfoItemResponse{
		Id:       item.Id.String(),
		Category: item.Category,
		Title:    item.Title,
		Content:  item.Content,
		Keywords: item.Keywords,
	}
}

func synonymToResponse(synonym *entity.Synonym) *dto.SynonymResponse {
	return &dto.SynonymResponse{
		Id:         synonym.Id.String(),
		Canonical:  synonym.Canonical,
		Alternates: synonym.Alternates,
	}
}
