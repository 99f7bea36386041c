package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteState reports the state of the (user, interview) pair after a toggle.
type FavoriteState struct {
	NowFavorited bool
}

// FavoriteUsecase defines the interface for the favorite toggle.
type FavoriteUsecase interface {
	// Toggle flips the favorite mark atomically: favorited becomes
	// unfavorited and vice versa. Two concurrent toggles on the same pair
	// never produce a duplicate row.
	Toggle(ctx context.Context, userID uuid.UUID, interviewID int64) (*FavoriteState, error)
}
