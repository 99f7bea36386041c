package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"interviewlog/config"
	"interviewlog/internal/domain/service"
	"interviewlog/internal/errors"
)

const defaultSessionTTL = 24 * time.Hour

// sessionTokenService implements SessionTokenService with HS256-signed tokens.
// The signature is a first gate only; resolution still requires the matching
// session row, which is what makes logout immediate.
type sessionTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &sessionTokenService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed wire token for a session.
func (s *sessionTokenService) Issue(sessionID, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Parse verifies the signature and expiry of a wire token.
func (s *sessionTokenService) Parse(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected session token claims")
	}

	sessionID, err := parseUUIDClaim(claims, "sid")
	if err != nil {
		return nil, err
	}
	userID, err := parseUUIDClaim(claims, "sub")
	if err != nil {
		return nil, err
	}

	return &service.SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
	}, nil
}

// Hash derives the storage hash of a wire token.
func (s *sessionTokenService) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// TTL returns the configured session lifetime.
func (s *sessionTokenService) TTL() time.Duration {
	return s.ttl
}

func parseUUIDClaim(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, errors.Errorf("claim %s missing from session token", key)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "claim %s is not a valid id", key)
	}

	return id, nil
}
