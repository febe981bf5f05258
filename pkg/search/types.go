package search

import "time"

// DocType classifies an archive document.
type DocType string

const (
	DocTypePYQ       DocType = "PYQ"
	DocTypeTimetable DocType = "Timetable"
	DocTypeOthers    DocType = "Others"
)

// Subject is a note-corpus entry: a subject with its tagged units.
// The engine only reads snapshots; ownership stays with the repository.
type Subject struct {
	Name     string
	Keywords []string
	Units    []Unit
}

// Unit is one uploadable study unit under a subject.
type Unit struct {
	Name       string
	Filename   string
	Keywords   []string
	UploadedAt time.Time
}

// Document is an archive-corpus entry (previous-year questions,
// timetables and similar documents).
type Document struct {
	ID         string
	Name       string
	Type       DocType
	Filename   string
	Keywords   []string
	UploadedAt time.Time
}

// InfoItem is a small Q&A/info-corpus entry maintained by the admin.
type InfoItem struct {
	Category string
	Title    string
	Content  string
	Keywords []string
}

// KnowledgeEntry is a literal question/answer pair used as the last
// lookup tier before a query is declared unanswered.
type KnowledgeEntry struct {
	Question string
	Answer   string
}

// ScoredUnit is a ranked note-search hit. Created fresh per call.
type ScoredUnit struct {
	Subject string `json:"subject"`
	Unit    string `json:"unit"`
	Data    Unit   `json:"data"`
	Score   int    `json:"score"`
}

// ScoredDocument is a ranked archive-search hit.
type ScoredDocument struct {
	ID    string   `json:"id"`
	Data  Document `json:"data"`
	Score int      `json:"score"`
}

// ScoredInfo is a ranked info-corpus hit.
type ScoredInfo struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Score    int    `json:"score"`
}
