package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks interest by a user on an interview.
// The (UserID, InterviewID) pair is unique; a user favorites a given
// interview at most once.
type Favorite struct {
	UserID      uuid.UUID `json:"user_id"`
	InterviewID int64     `json:"interview_id"`
	CreatedAt   time.Time `json:"created_at"`
}
