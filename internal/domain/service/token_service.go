package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
}

// SessionTokenService mints and verifies the opaque wire tokens that address
// server-side sessions. A token is only as alive as its session row: parsing
// succeeds on any well-formed, signed token, and the session repository
// decides whether it still resolves.
type SessionTokenService interface {
	// Issue creates a signed wire token for a session.
	Issue(sessionID, userID uuid.UUID) (string, error)

	// Parse verifies the signature and expiry of a wire token.
	Parse(token string) (*SessionClaims, error)

	// Hash derives the storage hash of a wire token.
	Hash(token string) string

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
