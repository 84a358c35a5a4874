// Package usecase provides testify-backed test doubles for the use case
// interfaces the delivery layer depends on.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
	domainusecase "taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockTestingT is the subset of *testing.T the constructors need.
type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock wired to the test's lifecycle.
func NewMockUserUsecase(t mockTestingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *domainusecase.RegisterInput) (*domainusecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*domainusecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *domainusecase.LoginInput) (*domainusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*domainusecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, input *domainusecase.ListUsersInput) ([]*entity.User, error) {
	args := m.Called(ctx, input)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTaskUsecase is a mock implementation of usecase.TaskUsecase.
type MockTaskUsecase struct {
	mock.Mock
}

// NewMockTaskUsecase creates a mock wired to the test's lifecycle.
func NewMockTaskUsecase(t mockTestingT) *MockTaskUsecase {
	m := &MockTaskUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskUsecase) CreateTask(ctx context.Context, actorID uuid.UUID, input *domainusecase.CreateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, actorID, input)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTaskUsecase) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*entity.Task, error) {
	args := m.Called(ctx, actorID, taskID)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTaskUsecase) ListTasks(ctx context.Context, actorID uuid.UUID, input *domainusecase.ListTasksInput) ([]*entity.Task, error) {
	args := m.Called(ctx, actorID, input)
	if tasks, ok := args.Get(0).([]*entity.Task); ok {
		return tasks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTaskUsecase) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, input *domainusecase.UpdateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, actorID, taskID, input)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTaskUsecase) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	args := m.Called(ctx, actorID, taskID)

	return args.Error(0)
}
