// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"interviewlog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
// Next is the path to return to after login; it defaults to "/".
type LoginInput struct {
	Username string
	Password string
	Next     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
	Next  string
}

// Identity is the resolved caller of a request.
type Identity struct {
	User *entity.User
}

// UserUsecase defines the interface for identity and session operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, token string) error

	// Resolve maps a wire token to the logged-in user. It is used by the auth
	// middleware; an invalid, expired or logged-out token yields an error.
	Resolve(ctx context.Context, token string) (*Identity, error)
}
