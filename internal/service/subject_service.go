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

var ErrSubjectNotFound = errors.New("subject not found")

type ISubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.SubjectResponse, error)
	AddUnit(ctx context.Context, subjectId uuid.UUID, req *dto.CreateUnitRequest) (*dto.UnitResponse, error)
	DeleteUnit(ctx context.Context, unitId uuid.UUID) error
}

type subjectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSubjectService(uowFactory unitofwork.RepositoryFactory) ISubjectService {
	return &subjectService{uowFactory: uowFactory}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subject := &entity.Subject{
		Id:        uuid.New(),
		Name:      req.Name,
		Keywords:  req.Keywords,
		CreatedAt: time.Now(),
	}
	if err := uow.SubjectRepository().Create(ctx, subject); err != nil {
		return nil, err
	}
	return subjectToResponse(subject), nil
}

func (s *subjectService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	now := time.Now()
	subject.Name = req.Name
	subject.Keywords = req.Keywords
	subject.UpdatedAt = &now
	if err := uow.SubjectRepository().Update(ctx, subject); err != nil {
		return nil, err
	}
	return subjectToResponse(subject), nil
}

// Delete removes a subject; its units go with it via the FK cascade.
func (s *subjectService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SubjectRepository().Delete(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*dto.SubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subjects, err := uow.SubjectRepository().FindAll(ctx, specification.WithUnits{}, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SubjectResponse, len(subjects))
	for i, subject := range subjects {
		responses[i] = subjectToResponse(subject)
	}
	return responses, nil
}

func (s *subjectService) AddUnit(ctx context.Context, subjectId uuid.UUID, req *dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: subjectId})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	unit := &entity.Unit{
		Id:         uuid.New(),
		SubjectId:  subjectId,
		Name:       req.Name,
		Filename:   req.Filename,
		Keywords:   req.Keywords,
		UploadedAt: time.Now(),
	}
	if err := uow.UnitRepository().Create(ctx, unit); err != nil {
		return nil, err
	}
	return unitToResponse(unit), nil
}

func (s *subjectService) DeleteUnit(ctx context.Context, unitId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UnitRepository().Delete(ctx, unitId)
}

func subjectToResponse(subject *entity.Subject) *dto.SubjectResponse {
	units := make([]dto.UnitResponse, len(subject.Units))
	for i, unit := range subject.Units {
		units[i] = *unitToResponse(unit)
	}
	return &dto.SubjectResponse{
		Id:        subject.Id.String(),
		Name:      subject.Name,
		Keywords:  subject.Keywords,
		Units:     units,
		CreatedAt: subject.CreatedAt,
	}
}

func unitToResponse(unit *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		Id:         unit.Id.String(),
		SubjectId:  unit.SubjectId.String(),
		Name:       unit.Name,
		Filename:   unit.Filename,
		Keywords:   unit.Keywords,
		UploadedAt: unit.UploadedAt,
	}
}
