package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ArchiveDocument struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Type       string         `gorm:"type:varchar(32);not null;index"`
	Filename   string         `gorm:"type:varchar(512)"`
	Keywords   datatypes.JSON `gorm:"type:jsonb"`
	UploadedAt time.Time      `gorm:"autoCreateTime"`
}

func (ArchiveDocument) TableName() string {
	return "archive_documents"
}
