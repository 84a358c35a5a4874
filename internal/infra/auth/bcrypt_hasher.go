// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"taskboard/config"
	"taskboard/internal/domain/service"
)

// bcryptSecretLimit is the number of password bytes bcrypt actually uses.
// Anything beyond it is ignored by the algorithm, so we truncate explicitly
// and identically on both the hash and verify paths.
const bcryptSecretLimit = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation. Over-length passwords are
// truncated, not rejected.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(normalizeBcryptSecret(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), normalizeBcryptSecret(password))
	// err is nil if the password and hash match.
	return err == nil
}

// normalizeBcryptSecret caps the password at bcrypt's byte limit.
// The truncation must match between Hash and Check or no long password
// would ever verify.
func normalizeBcryptSecret(password string) []byte {
	secret := []byte(password)
	if len(secret) > bcryptSecretLimit {
		secret = secret[:bcryptSecretLimit]
	}

	return secret
}
