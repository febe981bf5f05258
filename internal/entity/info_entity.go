package entity

import (
	"time"

	"github.com/google/uuid"
)

// InfoItem is an admin-maintained info-corpus entry (fees, hours,
// admission procedures and the like).
type InfoItem struct {
	Id        uuid.UUID
	Category  string
	Title     string
	Content   string
	Keywords  []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// KnowledgeEntry is a literal question/answer pair, the last lookup tier
// before a query is declared unanswered.
type KnowledgeEntry struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
}

// UnansweredQuery is a user query nothing could answer, kept for admin
// review.
type UnansweredQuery struct {
	Id        uuid.UUID
	Query     string
	AskedAt   time.Time
	CreatedAt time.Time
}
