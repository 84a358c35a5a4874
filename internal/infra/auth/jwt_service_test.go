package auth

import (
	"testing"
	"time"

	"taskboard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Token.ExpireMinutes = 30

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, "staff")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// A negative TTL produces an already-expired token.
	token, err := jwtService.GenerateTokenWithTTL(uuid.New(), "staff", -time.Minute)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testTokenConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testTokenConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), "staff")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingExpiryRejected(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testTokenConfig(secret))
	require.NoError(t, err)

	// Hand-craft a token without an exp claim. Validation requires expiry,
	// so this must be rejected even though the signature is fine.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Unix(),
	})
	token, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_NonUUIDSubjectRejected(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testTokenConfig(secret))
	require.NoError(t, err)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42", // not a UUID
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	token, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "not a valid user id")
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
