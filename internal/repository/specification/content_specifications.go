package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySubjectId filters units by their owning subject.
type BySubjectId struct {
	SubjectId uuid.UUID
}

func (s BySubjectId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject_id = ?", s.SubjectId)
}

// ByCanonical filters synonym rows by canonical term.
type ByCanonical struct {
	Canonical string
}

func (s ByCanonical) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("canonical = ?", s.Canonical)
}

// ByUsername filters admin users by username.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// ByCategory filters info items by category.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByDocumentType filters archive documents by their declared type.
type ByDocumentType struct {
	Type string
}

func (s ByDocumentType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// WithUnits preloads a subject's units.
type WithUnits struct{}

func (s WithUnits) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Units")
}
