package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InfoItem struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category  string         `gorm:"type:varchar(64);not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text;not null"`
	Keywords  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (InfoItem) TableName() string {
	return "info_items"
}

type KnowledgeEntry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}

type UnansweredQuery struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Query     string    `gorm:"type:text;not null"`
	AskedAt   time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UnansweredQuery) TableName() string {
	return "unanswered_queries"
}
