package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArchiveDocument is an archive-corpus document: previous-year question
// papers, timetables and similar uploads.
type ArchiveDocument struct {
	Id         uuid.UUID
	Name       string
	Type       string // "PYQ", "Timetable", "Others"
	Filename   string
	Keywords   []string
	UploadedAt time.Time
}
