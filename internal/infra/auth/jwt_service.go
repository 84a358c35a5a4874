// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskboard/config"
	"taskboard/internal/domain/service"
	"taskboard/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Default time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := time.Duration(cfg.Token.ExpireMinutes) * time.Minute

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// GenerateToken creates a signed access token with the configured default TTL.
func (s *jwtService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	return s.GenerateTokenWithTTL(userID, role, s.accessTTL)
}

// GenerateTokenWithTTL creates a signed access token with an explicit TTL.
func (s *jwtService) GenerateTokenWithTTL(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),     // Subject (who the token is for), round-tripped as a string.
		"role": role,                // Role claim for stateless authorization checks.
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
// A bad signature, malformed token, missing or past expiry, and a
// non-UUID subject all return an error rather than a panic.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(s.secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims format")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("token subject is missing")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a valid user id")
	}

	role, _ := mapClaims["role"].(string)

	claims := &service.Claims{
		UserID: userID,
		Role:   role,
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// AccessTokenDuration returns the configured default token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
