package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subject struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Keywords  datatypes.JSON `gorm:"type:jsonb"`
	Units     []Unit         `gorm:"foreignKey:SubjectId;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Subject) TableName() string {
	return "subjects"
}

type Unit struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Filename   string         `gorm:"type:varchar(512)"`
	Keywords   datatypes.JSON `gorm:"type:jsonb"`
	UploadedAt time.Time      `gorm:"autoCreateTime"`
}

func (Unit) TableName() string {
	return "units"
}
