package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims carries the validated contents of an access token.
// UserID is parsed back from the token's string subject; a subject that is
// not a valid UUID fails validation instead of surfacing here.
type Claims struct {
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a user with the
	// configured default time-to-live.
	GenerateToken(userID uuid.UUID, role string) (string, error)

	// GenerateTokenWithTTL creates a signed access token with an explicit
	// time-to-live, overriding the configured default.
	GenerateTokenWithTTL(userID uuid.UUID, role string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string. It returns an
	// error (never panics) for a bad signature, a malformed token, a missing
	// or past expiry, or a subject that cannot be parsed as a user ID.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured default token lifetime.
	AccessTokenDuration() time.Duration
}
