// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTaskCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTaskCreationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Update the task entity with the generated ID and timestamps
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByID retrieves a single task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// FindByAssignee retrieves a user's tasks with offset/limit pagination.
// Ordered by creation time ascending so the same dataset always pages the same way.
func (repo *taskRepository) FindByAssignee(ctx context.Context, assigneeID uuid.UUID, offset, limit int) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("assignee_id = ?", assigneeID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&taskModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by assignee")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, toTaskDomain(&taskModels[i]))
	}

	return tasks, nil
}

// Update persists the full state of an existing task. GORM refreshes
// UpdatedAt on every save.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Save(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTaskUpdateFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}

	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Delete removes a task by its ID (hard delete).
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	// If no rows were affected, the task was not found.
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Status:       entity.TaskStatus(data.Status),
		AssigneeID:   data.AssigneeID,
		AssignedByID: data.AssignedByID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Status:       data.Status.String(),
		AssigneeID:   data.AssigneeID,
		AssignedByID: data.AssignedByID,
		CreatedAt:    data.CreatedAt,
	}
}
