// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role // Optional. Empty defaults to staff.
}

// LoginInput defines the data required for a user to log in.
// Identifier may be a username or an email address.
type LoginInput struct {
	Identifier string
	Password   string
}

// ListUsersInput carries pagination for the user listing.
type ListUsersInput struct {
	Offset int
	Limit  int
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)
}
