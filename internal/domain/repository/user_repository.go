// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"interviewlog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindCredentialByUsername retrieves the password credential for a username.
	// Used only by the authentication flow; the hash never travels further up.
	FindCredentialByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// Create persists a new user together with their password hash.
	// Returns ErrDuplicateUser when the username or email is already taken.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// UpdateTier changes the account tier of an existing user.
	UpdateTier(ctx context.Context, id uuid.UUID, tier entity.Tier) error
}
