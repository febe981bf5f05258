package mapper

import (
	"time"

	"mentora-be/internal/entity"
	"mentora-be/internal/model"
)

type CredentialMapper struct{}

func NewCredentialMapper() *CredentialMapper {
	return &CredentialMapper{}
}

func (m *CredentialMapper) ToEntity(c *model.ChatbotCredential) *entity.ChatbotCredential {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatbotCredential{
		Id:           c.Id,
		PasswordHash: c.PasswordHash,
		LastChanged:  c.LastChanged,
		UpdatedAt:    updatedAt,
	}
}

func (m *CredentialMapper) ToModel(c *entity.ChatbotCredential) *model.ChatbotCredential {
	if c == nil {
		return nil
	}
	return &model.ChatbotCredential{
		Id:           c.Id,
		PasswordHash: c.PasswordHash,
		LastChanged:  c.LastChanged,
	}
}

func (m *CredentialMapper) AdminToEntity(a *model.AdminUser) *entity.AdminUser {
	if a == nil {
		return nil
	}
	return &entity.AdminUser{
		Id:           a.Id,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *CredentialMapper) AdminToModel(a *entity.AdminUser) *model.AdminUser {
	if a == nil {
		return nil
	}
	return &model.AdminUser{
		Id:           a.Id,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
}
