package usecase

import (
	"context"

	"github.com/google/uuid"

	"interviewlog/internal/domain/entity"
)

// CommentUsecase defines the interface for the append-only comment subsystem.
type CommentUsecase interface {
	// Add attaches a comment to an interview. Content must be non-empty and
	// the interview must exist.
	Add(ctx context.Context, interviewID int64, authorID uuid.UUID, content string) (*entity.Comment, error)

	// List returns the comments of an interview ordered oldest first.
	List(ctx context.Context, interviewID int64) ([]*entity.Comment, error)
}
