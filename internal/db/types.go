package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/contractor-intake/internal/types"
)

// Contractor is a stored contractor record row.
type Contractor struct {
	ID        uuid.UUID              `json:"id"`
	Record    types.NormalizedRecord `json:"record"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// KeywordRow is a stored keyword tag. Uniqueness is enforced by the
// database on (lower(name), category), which is what lets two concurrent
// uploads propose the same new tag without creating duplicates.
type KeywordRow struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Category  types.KeywordCategory `json:"category"`
	CreatedAt time.Time             `json:"created_at"`
}
