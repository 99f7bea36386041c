package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only child record of an interview.
// Comments have no update or delete operations; they disappear only when the
// parent interview is deleted.
type Comment struct {
	ID             int64     `json:"id"`
	InterviewID    int64     `json:"interview_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"` // Resolved from the author row for display.
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
