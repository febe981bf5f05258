package contract

import (
	"context"

	"mentora-be/internal/entity"
	"mentora-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SynonymRepository interface {
	Create(ctx context.Context, synonym *entity.Synonym) error
	Update(ctx context.Context, synonym *entity.Synonym) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Synonym, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Synonym, error)
}
