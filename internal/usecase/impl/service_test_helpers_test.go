package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"
	"taskboard/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{UserRepository: userRepo},
	}

	service := NewUserService(txManager, hasher, tokenService, logger)

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	userRepo *mockRepo.MockUserRepository
	taskRepo *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{
			UserRepository: userRepo,
			TaskRepository: taskRepo,
		},
	}

	service := NewTaskService(txManager, logger)

	return taskServiceFixtures{
		service:  service,
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}
