package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatbotCredential struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	LastChanged  string    `gorm:"type:varchar(64);not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ChatbotCredential) TableName() string {
	return "chatbot_credentials"
}

type AdminUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
