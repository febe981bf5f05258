package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatbotCredential is the shared access credential for the student-facing
// chat. LastChanged is an ISO-8601 instant; sessions issued before it are
// invalid.
type ChatbotCredential struct {
	Id           uuid.UUID
	PasswordHash string
	LastChanged  string
	UpdatedAt    *time.Time
}

// AdminUser manages the content corpora through the guarded routes.
type AdminUser struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
