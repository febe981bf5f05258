package dto

import "time"

type CreateSubjectRequest struct {
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords"`
}

type UpdateSubjectRequest struct {
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords"`
}

type SubjectResponse struct {
	Id        string         `json:"id"`
	Name      string         `json:"name"`
	Keywords  []string       `json:"keywords"`
	Units     []UnitResponse `json:"units,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreateUnitRequest struct {
	Name     string   `json:"name" validate:"required"`
	Filename string   `json:"filename" validate:"required"`
	Keywords []string `json:"keywords"`
}

type UnitResponse struct {
	Id         string    `json:"id"`
	SubjectId  string    `json:"subject_id"`
	Name       string    `json:"name"`
	Filename   string    `json:"filename"`
	Keywords   []string  `json:"keywords"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type CreateArchiveDocumentRequest struct {
	Name     string   `json:"name" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=PYQ Timetable Others"`
	Filename string   `json:"filename" validate:"required"`
	Keywords []string `json:"keywords"`
}

type ArchiveDocumentResponse struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Filename   string    `json:"filename"`
	Keywords   []string  `json:"keywords"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type CreateInfoItemRequest struct {
	Category string   `json:"category" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Keywords []string `json:"keywords"`
}

type InfoItemResponse struct {
	Id       string   `json:"id"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

type CreateKnowledgeEntryRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type KnowledgeEntryResponse struct {
	Id       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type UnansweredQueryResponse struct {
	Id      string `json:"id"`
	Query   string `json:"query"`
	AskedAt string `json:"asked_at"`
}

type CreateSynonymRequest struct {
	Canonical  string   `json:"canonical" validate:"required"`
	Alternates []string `json:"alternates" validate:"required,min=1"`
}

type SynonymResponse struct {
	Id         string   `json:"id"`
	Canonical  string   `json:"canonical"`
	Alternates []string `json:"alternates"`
}
