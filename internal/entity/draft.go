package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Draft is a document being edited in one browser session. Drafts live in memory only.
type Draft struct {
	ID        uuid.UUID
	Document  Document
	CreatedAt time.Time
	UpdatedAt time.Time
}
