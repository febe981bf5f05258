package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Synonym struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Canonical  string         `gorm:"type:varchar(128);not null;uniqueIndex"`
	Alternates datatypes.JSON `gorm:"type:jsonb"`
}

func (Synonym) TableName() string {
	return "synonyms"
}
