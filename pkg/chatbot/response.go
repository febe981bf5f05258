package chatbot

import "mentora-be/pkg/search"

// Response is the closed set of typed chat replies. Every variant
// carries its discriminator in the Type field so callers can marshal
// directly, while the unexported marker keeps the set closed.
type Response interface {
	isResponse()
}

const (
	TypeText         = "text"
	TypeSubjectsList = "subjects_list"
	TypeUnitsList    = "units_list"
	TypeNotesResults = "notes_results"
	TypePYQResults   = "pyq_results"
	TypePYQList      = "pyq_list"
	TypeError        = "error"
)

type TextResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (TextResponse) isResponse() {}

func NewTextResponse(message string) TextResponse {
	return TextResponse{Type: TypeText, Message: message}
}

type SubjectsListResponse struct {
	Type     string         `json:"type"`
	Message  string         `json:"message"`
	Subjects map[string]int `json:"subjects"`
}

func (SubjectsListResponse) isResponse() {}

type UnitsListResponse struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Subject string                 `json:"subject"`
	Units   map[string]search.Unit `json:"units"`
}

func (UnitsListResponse) isResponse() {}

type NotesResultsResponse struct {
	Type    string              `json:"type"`
	Message string              `json:"message"`
	Results []search.ScoredUnit `json:"results"`
}

func (NotesResultsResponse) isResponse() {}

type PYQResultsResponse struct {
	Type    string                  `json:"type"`
	Message string                  `json:"message"`
	Results []search.ScoredDocument `json:"results"`
}

func (PYQResultsResponse) isResponse() {}

type PYQListResponse struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Types   map[string]int `json:"types"`
}

func (PYQListResponse) isResponse() {}

type ErrorResponse struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (ErrorResponse) isResponse() {}

const ErrSessionExpired = "session_expired"

func NewSessionExpiredResponse(message string) ErrorResponse {
	return ErrorResponse{Type: TypeError, Error: ErrSessionExpired, Message: message}
}
