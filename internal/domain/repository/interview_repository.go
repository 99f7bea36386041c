package repository

import (
	"context"
	"errors"

	"interviewlog/internal/domain/entity"
)

// ErrInterviewNotFound is returned when no interview matches the given ID.
var ErrInterviewNotFound = errors.New("interview not found")

// InterviewRepository defines the operations for interview persistence.
type InterviewRepository interface {
	// Create persists a new interview and fills in its generated ID and timestamps.
	Create(ctx context.Context, interview *entity.Interview) error

	// FindByID retrieves a single interview by ID.
	FindByID(ctx context.Context, id int64) (*entity.Interview, error)

	// List retrieves interviews ordered by descending ID (newest first).
	// limit <= 0 means no limit; offset makes the sequence restartable.
	List(ctx context.Context, limit, offset int) ([]*entity.Interview, error)

	// Update persists the mutable fields of an existing interview.
	// The owner binding is never changed by an update.
	Update(ctx context.Context, interview *entity.Interview) error

	// Delete hard-deletes an interview. Returns ErrInterviewNotFound when no
	// row matches.
	Delete(ctx context.Context, id int64) error
}
