package contract

import (
	"context"

	"mentora-be/internal/entity"
	"mentora-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InfoRepository interface {
	Create(ctx context.Context, item *entity.InfoItem) error
	Update(ctx context.Context, item *entity.InfoItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InfoItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InfoItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type KnowledgeRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error)
}

type UnansweredQueryRepository interface {
	Create(ctx context.Context, query *entity.UnansweredQuery) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UnansweredQuery, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
