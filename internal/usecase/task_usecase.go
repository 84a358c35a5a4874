// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a new task.
// The acting user becomes the assigner; AssigneeID defaults to the actor
// when not supplied.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      entity.TaskStatus // Optional. Empty defaults to pending.
	AssigneeID  *uuid.UUID
}

// UpdateTaskInput carries a partial task update. Nil fields are left
// untouched; non-nil fields are applied even when they hold a zero value,
// so an explicit empty title overwrites while an omitted title does not.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// ListTasksInput carries pagination for the assignee-scoped task listing.
type ListTasksInput struct {
	Offset int
	Limit  int
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation takes the acting user's ID; existence is checked before
// ownership, so a task that exists but belongs to someone else yields a
// forbidden error rather than not-found.
type TaskUsecase interface {
	CreateTask(ctx context.Context, actorID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*entity.Task, error)
	ListTasks(ctx context.Context, actorID uuid.UUID, input *ListTasksInput) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error
}
