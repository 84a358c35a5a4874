// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultListLimit = 100

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "username", input.Username, "email", input.Email)

	role := input.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role.String())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity). Both uniqueness checks run
	// before any write; the DB unique constraints remain the final arbiter
	// for the check-then-insert race.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check that the username is free.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			// If no error, a user with this username was found.
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("user registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by username")
		}

		// 2. Check that the email is free.
		_, err = userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 3. Create the User entity.
		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			IsActive:     true,
			Role:         role,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("User registration failed", "username", input.Username, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
// Unknown identifier and wrong password fail with the same error so that
// the response discloses nothing about which one was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "identifier", input.Identifier)

	var loggedInUser *entity.User
	var accessToken string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Resolve the identifier: username first, then email.
		user, err := userRepo.FindByUsername(ctx, input.Identifier)
		if errors.Is(err, repository.ErrUserNotFound) {
			user, err = userRepo.FindByEmail(ctx, input.Identifier)
		}
		if err != nil {
			// This includes ErrUserNotFound, which is treated identically to a wrong password.
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 2. Check the password and the account state.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// 3. Issue the access token.
		accessToken, err = srv.tokenService.GenerateToken(user.ID, user.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "identifier", input.Identifier, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        loggedInUser,
	}, nil
}

// GetProfile returns the user record for an authenticated user ID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns a page of users ordered by creation time.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := max(input.Offset, 0)

	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().List(ctx, offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
