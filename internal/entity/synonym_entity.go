package entity

import "github.com/google/uuid"

// Synonym binds a canonical term to its accepted alternates. Rows override
// the built-in defaults when present.
type Synonym struct {
	Id         uuid.UUID
	Canonical  string
	Alternates []string
}
