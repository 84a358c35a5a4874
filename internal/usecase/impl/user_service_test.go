package impl

import (
	"context"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleStaff, output.User.Role)
	assert.True(t, output.User.IsActive)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "taken",
		Email:    "new@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("FindByUsername", ctx, input.Username).
		Return(&entity.User{ID: uuid.New(), Username: input.Username}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
	// The email check and the write must not have run.
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "fresh",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "Password123!",
		Role:     entity.Role("superuser"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_ByUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "tester",
		Email:        "tester@example.com",
		PasswordHash: "stored_hash",
		IsActive:     true,
		Role:         entity.RoleStaff,
	}

	fx.userRepo.On("FindByUsername", ctx, "tester").Return(user, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.tokenService.On("GenerateToken", userID, "staff").Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "tester",
		Password:   "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_ByEmailFallback(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "tester@example.com",
		PasswordHash: "stored_hash",
		IsActive:     true,
		Role:         entity.RoleAdmin,
	}

	fx.userRepo.On("FindByUsername", ctx, "tester@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "tester@example.com").Return(user, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.tokenService.On("GenerateToken", userID, "admin").Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "tester@example.com",
		Password:   "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.AccessToken)
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	// Unknown identifier and wrong password must fail with the same error,
	// so a caller cannot tell accounts apart from passwords.
	ctx := context.Background()

	t.Run("unknown identifier", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.On("FindByEmail", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever"})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New(), Username: "tester", PasswordHash: "stored_hash", IsActive: true}
		fx.userRepo.On("FindByUsername", ctx, "tester").Return(user, nil)
		fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "tester", Password: "wrong"})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New(), Username: "tester", PasswordHash: "stored_hash", IsActive: false}
		fx.userRepo.On("FindByUsername", ctx, "tester").Return(user, nil)
		fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "tester", Password: "Password123!"})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "tester"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	found, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_DefaultsPagination(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	// Zero limit falls back to the default page size; negative offset is clamped.
	fx.userRepo.On("List", ctx, 0, defaultListLimit).Return(users, nil)

	found, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Offset: -5, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
