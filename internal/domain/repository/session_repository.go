package repository

import (
	"context"
	"errors"

	"interviewlog/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches the given token hash or ID.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExpired is returned when a matching session exists but is past its expiry.
var ErrSessionExpired = errors.New("session expired")

// SessionRepository defines the operations for session persistence.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a live session by the hash of its wire token.
	// Returns ErrSessionExpired for rows past their expiry.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session, ending it immediately.
	// Returns ErrSessionNotFound when no row matches.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
