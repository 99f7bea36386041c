package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"interviewlog/internal/domain/entity"
)

// InterviewFields carries the mutable fields of an interview record.
// The owner is bound at creation and never part of this set.
type InterviewFields struct {
	CompanyName   string
	Position      string
	InterviewDate *time.Time
	Review        string
	Rating        int
	Result        string
}

// InterviewDetail is an interview together with its comments and, when the
// viewer is logged in, whether they have favorited it.
type InterviewDetail struct {
	Interview *entity.Interview
	Comments  []*entity.Comment
	Favorited bool
}

// ListInterviewsInput controls pagination of the canonical listing.
type ListInterviewsInput struct {
	Limit  int
	Offset int
}

// InterviewUsecase defines the interface for interview record operations.
type InterviewUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, fields InterviewFields) (*entity.Interview, error)

	// Get returns the detail view. viewerID is uuid.Nil for anonymous viewers,
	// in which case Favorited is always false.
	Get(ctx context.Context, id int64, viewerID uuid.UUID) (*InterviewDetail, error)

	// List returns interviews ordered by descending ID (newest first).
	List(ctx context.Context, input ListInterviewsInput) ([]*entity.Interview, error)

	Update(ctx context.Context, id int64, requesterID uuid.UUID, fields InterviewFields) (*entity.Interview, error)

	// Delete removes the interview and cascades to its comments and favorites.
	Delete(ctx context.Context, id int64, requesterID uuid.UUID) error
}
