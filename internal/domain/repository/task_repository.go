// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByAssignee retrieves the tasks assigned to a user with offset/limit
	// pagination. Results are ordered by creation time ascending so that the
	// same dataset always pages the same way.
	FindByAssignee(ctx context.Context, assigneeID uuid.UUID, offset, limit int) ([]*entity.Task, error)

	// Update persists the full state of an existing task. Partial-update
	// merging happens in the use case layer before this is called.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its ID. Returns ErrTaskNotFound when no row
	// was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
