// Package service provides testify-backed test doubles for the domain
// service interfaces.
package service

import (
	"time"

	domainservice "taskboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockTestingT is the subset of *testing.T the constructors need.
type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock wired to the test's lifecycle.
func NewMockPasswordHasher(t mockTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test's lifecycle.
func NewMockTokenService(t mockTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateTokenWithTTL(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	args := m.Called(userID, role, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*domainservice.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
