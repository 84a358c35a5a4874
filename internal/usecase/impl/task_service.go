// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateTask creates a new task assigned by the acting user.
func (srv *taskService) CreateTask(ctx context.Context, actorID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	status := input.Status
	if status == "" {
		status = entity.TaskStatusPending
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidTaskStatus.WithDetails("unknown status: " + status.String())
	}

	assigneeID := actorID
	if input.AssigneeID != nil {
		assigneeID = *input.AssigneeID
	}

	newTask := &entity.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		AssigneeID:   assigneeID,
		AssignedByID: actorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// When assigning to someone else, the assignee must exist.
		if assigneeID != actorID {
			if _, err := repoFactory.UserRepo().FindByID(ctx, assigneeID); err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrUserNotFound.WrapMessage("assignee does not exist")
				}

				return errors.Wrap(err, "failed to find assignee")
			}
		}

		return errors.WithStack(repoFactory.TaskRepo().Create(ctx, newTask))
	})
	if err != nil {
		srv.logger.Warn("Task creation failed", "actorID", actorID, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Task created", "taskID", newTask.ID, "assigneeID", assigneeID)

	return newTask, nil
}

// GetTask returns a task visible to the acting user.
// Existence is checked first: a missing task is NotFound, an existing task
// the actor has no claim on is Forbidden.
func (srv *taskService) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*entity.Task, error) {
	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.fetchTaskChecked(ctx, repoFactory, actorID, taskID, false)
		if err != nil {
			return err
		}
		task = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns a page of the acting user's assigned tasks.
func (srv *taskService) ListTasks(ctx context.Context, actorID uuid.UUID, input *usecase.ListTasksInput) ([]*entity.Task, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := max(input.Offset, 0)

	var tasks []*entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TaskRepo().FindByAssignee(ctx, actorID, offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list tasks")
		}
		tasks = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task. Only the assignee may
// mutate. Nil input fields are left untouched; non-nil fields overwrite,
// including explicit zero values.
func (srv *taskService) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidTaskStatus.WithDetails("unknown status: " + input.Status.String())
	}

	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.fetchTaskChecked(ctx, repoFactory, actorID, taskID, true)
		if err != nil {
			return err
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Status != nil {
			found.Status = *input.Status
		}

		if err := repoFactory.TaskRepo().Update(ctx, found); err != nil {
			return errors.WithStack(err)
		}
		task = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Task update failed", "taskID", taskID, "actorID", actorID, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Task updated", "taskID", taskID)

	return task, nil
}

// DeleteTask removes a task (hard delete). Only the assignee may delete.
func (srv *taskService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.fetchTaskChecked(ctx, repoFactory, actorID, taskID, true); err != nil {
			return err
		}

		if err := repoFactory.TaskRepo().Delete(ctx, taskID); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound.WrapMessage("task already deleted")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Task deletion failed", "taskID", taskID, "actorID", actorID, "error", err.Error())

		return err
	}
	srv.logger.Debug("Task deleted", "taskID", taskID)

	return nil
}

// fetchTaskChecked loads a task and enforces the access policy, existence
// before ownership. Reads are allowed for the assignee and the assigner;
// mutations only for the assignee.
func (srv *taskService) fetchTaskChecked(ctx context.Context, repoFactory repository.RepositoryFactory, actorID, taskID uuid.UUID, mutating bool) (*entity.Task, error) {
	task, err := repoFactory.TaskRepo().FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	if mutating {
		if task.AssigneeID != actorID {
			return nil, domainerrors.ErrForbidden.WrapMessage("only the assignee may modify a task")
		}

		return task, nil
	}

	if task.AssigneeID != actorID && task.AssignedByID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("no access to this task")
	}

	return task, nil
}
