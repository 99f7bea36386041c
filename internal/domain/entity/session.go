package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-tracked association between a token and a user.
// Only a hash of the wire token is stored; destroying the row invalidates the
// token immediately regardless of its remaining signature lifetime.
type Session struct {
	ID        uuid.UUID // Session identifier, also embedded in the wire token.
	UserID    uuid.UUID // The authenticated user this session belongs to.
	TokenHash string    // SHA-256 hash of the opaque wire token.
	ExpiresAt time.Time // Hard expiry; resolution past this point fails.
	CreatedAt time.Time
}
