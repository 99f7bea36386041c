package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interview is the primary record: one user's account of a single job interview.
// OwnerID is bound at creation and immutable; only the owner may mutate or
// delete the record. Rating is constrained to the inclusive range [1,10].
type Interview struct {
	ID            int64      `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	CompanyName   string     `json:"company_name"`
	Position      string     `json:"position"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	Review        string     `json:"review"`
	Rating        int        `json:"rating"`
	Result        string     `json:"result,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Rating bounds for an interview record.
const (
	MinRating = 1
	MaxRating = 10
)
