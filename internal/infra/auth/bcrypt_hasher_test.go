package auth

import (
	"strings"
	"testing"

	"taskboard/config"

	"github.com/stretchr/testify/assert"
)

func testHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	password := "SomePassword123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password verifies, wrong one does not.
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Empty password and garbage hash both fail cleanly.
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_TruncatesLongPasswords(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	// 100 bytes, well past bcrypt's 72-byte limit. Hashing must not error
	// and verification must succeed.
	longPassword := strings.Repeat("a", 100)
	hash, err := hasher.Hash(longPassword)
	assert.NoError(t, err)
	assert.True(t, hasher.Check(longPassword, hash))
}

func TestBcryptHasher_TruncationIsConsistent(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	// Two passwords that only differ after byte 72 are the same secret as
	// far as bcrypt is concerned.
	base := strings.Repeat("x", 72)
	first := base + "tail-one"
	second := base + "completely-different-tail"

	hash, err := hasher.Hash(first)
	assert.NoError(t, err)
	assert.True(t, hasher.Check(second, hash))

	// A difference within the first 72 bytes still matters.
	within := strings.Repeat("y", 72) + "tail-one"
	assert.False(t, hasher.Check(within, hash))
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	// Out-of-range cost values fall back to the bcrypt default instead of failing.
	hasher := NewBcryptHasher(testHasherConfig(99))

	hash, err := hasher.Hash("SomePassword123!")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("SomePassword123!", hash))
}
