package contract

import (
	"context"

	"mentora-be/internal/entity"
	"mentora-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ArchiveRepository interface {
	Create(ctx context.Context, doc *entity.ArchiveDocument) error
	Update(ctx context.Context, doc *entity.ArchiveDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ArchiveDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchiveDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
