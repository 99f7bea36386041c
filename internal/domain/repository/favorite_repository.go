package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"interviewlog/internal/domain/entity"
)

// ErrDuplicateFavorite is returned when the (user, interview) pair already
// exists. A concurrent toggle losing the insert race surfaces as this error
// and resolves to the favorited state.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// FavoriteRepository defines the operations for the favorite relation.
type FavoriteRepository interface {
	// Create inserts the (user, interview) pair. Returns ErrDuplicateFavorite
	// when the pair already exists. The insert must be conflict-safe: a
	// duplicate is reported without failing the surrounding transaction.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the pair and reports whether a row was actually removed.
	Delete(ctx context.Context, userID uuid.UUID, interviewID int64) (bool, error)

	// Exists reports whether the pair is present.
	Exists(ctx context.Context, userID uuid.UUID, interviewID int64) (bool, error)

	// DeleteByInterviewID removes all favorites referencing an interview, as
	// part of the interview deletion cascade.
	DeleteByInterviewID(ctx context.Context, interviewID int64) error
}
