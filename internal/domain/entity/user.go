// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered identity capable of authenticating.
// The password credential is deliberately not part of this entity; it lives in
// Credential and never leaves the persistence/usecase boundary.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the user.
	Username  string    `json:"username"`   // The unique login name.
	Email     string    `json:"email"`      // The user's contact email.
	FirstName string    `json:"first_name"` // Display name, given part.
	LastName  string    `json:"last_name"`  // Display name, family part.
	Tier      Tier      `json:"tier"`       // Account tier (free or premium).
	CreatedAt time.Time `json:"created_at"` // Timestamp of account creation.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Credential carries the one-way password hash for a user.
// It is only ever compared against, never exposed through the API.
type Credential struct {
	UserID       uuid.UUID
	PasswordHash string
}
