// Package repository provides testify-backed test doubles for the domain
// repository interfaces.
package repository

import (
	"context"

	"taskboard/internal/domain/entity"
	domainrepo "taskboard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockTestingT is the subset of *testing.T the constructors need.
type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock wired to the test's lifecycle.
func NewMockUserRepository(t mockTestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	args := m.Called(ctx, offset, limit)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

// NewMockTaskRepository creates a mock wired to the test's lifecycle.
func NewMockTaskRepository(t mockTestingT) *MockTaskRepository {
	m := &MockTaskRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*entity.Task); ok {
		return task, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTaskRepository) FindByAssignee(ctx context.Context, assigneeID uuid.UUID, offset, limit int) ([]*entity.Task, error) {
	args := m.Called(ctx, assigneeID, offset, limit)
	if tasks, ok := args.Get(0).([]*entity.Task); ok {
		return tasks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// FakeRepositoryFactory hands out fixed repository instances. It stands in
// for the transaction-bound factory in use case tests.
type FakeRepositoryFactory struct {
	UserRepository domainrepo.UserRepository
	TaskRepository domainrepo.TaskRepository
}

func (f *FakeRepositoryFactory) UserRepo() domainrepo.UserRepository {
	return f.UserRepository
}

func (f *FakeRepositoryFactory) TaskRepo() domainrepo.TaskRepository {
	return f.TaskRepository
}

// FakeTransactionManager runs the callback immediately with the given
// factory, without any real transaction.
type FakeTransactionManager struct {
	Factory domainrepo.RepositoryFactory
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	return fn(f.Factory)
}
