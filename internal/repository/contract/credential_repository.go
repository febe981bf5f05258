package contract

import (
	"context"

	"mentora-be/internal/entity"
	"mentora-be/internal/repository/specification"
)

type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.ChatbotCredential) error
	Update(ctx context.Context, credential *entity.ChatbotCredential) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotCredential, error)
}

type AdminUserRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error)
}
