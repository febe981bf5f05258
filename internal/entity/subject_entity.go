package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a note-corpus subject with its tagged units.
type Subject struct {
	Id        uuid.UUID
	Name      string
	Keywords  []string
	Units     []*Unit
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Unit is one uploadable study unit under a subject. Filename is metadata
// only; file bytes never pass through this system.
type Unit struct {
	Id         uuid.UUID
	SubjectId  uuid.UUID
	Name       string
	Filename   string
	Keywords   []string
	UploadedAt time.Time
}
