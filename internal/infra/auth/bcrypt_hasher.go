// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"interviewlog/config"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/service"
)

const defaultPasswordMinLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	minLength := defaultPasswordMinLength
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.PasswordMinLength > 0 {
			minLength = cfg.Auth.PasswordMinLength
		}
	}

	return &bcryptHasher{cost: cost, minLength: minLength}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost. Useful for tests.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, minLength: defaultPasswordMinLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength rejects empty or too-short passwords before hashing.
func (h *bcryptHasher) ValidateStrength(password string) error {
	if strings.TrimSpace(password) == "" {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must not be empty")
	}
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	}

	return nil
}
