package repository

import (
	"context"

	"interviewlog/internal/domain/entity"
)

// CommentRepository defines the operations for comment persistence.
// Comments are append-only: there is deliberately no update or single-delete.
type CommentRepository interface {
	// Create persists a new comment and fills in its generated ID and timestamp.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByInterviewID retrieves all comments of an interview ordered by
	// creation time ascending, with author usernames resolved.
	ListByInterviewID(ctx context.Context, interviewID int64) ([]*entity.Comment, error)

	// DeleteByInterviewID removes all comments of an interview, as part of the
	// interview deletion cascade.
	DeleteByInterviewID(ctx context.Context, interviewID int64) error
}
