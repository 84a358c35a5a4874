package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/entity"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=100"`
	Description string  `json:"description" form:"description" validate:"max=255"`
	Status      string  `json:"status" form:"status" validate:"omitempty,oneof=pending in_progress completed"`
	AssigneeID  *string `json:"assignee_id" form:"assignee_id" validate:"omitempty,uuid"`
}

// updateTaskRequest distinguishes absent fields from explicit zero values,
// so a missing title is kept while an empty one overwrites.
type updateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

type taskResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	AssigneeID   uuid.UUID `json:"assignee_id"`
	AssignedByID uuid.UUID `json:"assigned_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status.String(),
		AssigneeID:   task.AssigneeID,
		AssignedByID: task.AssignedByID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

// CreateTask handles the task creation request.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	actorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
	}
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid assignee ID")
		}
		input.AssigneeID = &assigneeID
	}

	task, err := h.uc.CreateTask(c.Request().Context(), actorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// GetTask handles the request to fetch a single task.
func (h *TaskHandler) GetTask(c echo.Context) error {
	actorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	task, err := h.uc.GetTask(c.Request().Context(), actorID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task retrieved successfully")
}

// ListTasks handles the request to list the acting user's assigned tasks.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	actorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	offset, limit := paginationParams(c)

	tasks, err := h.uc.ListTasks(c.Request().Context(), actorID, &usecase.ListTasksInput{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, toTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, items, "Tasks retrieved successfully")
}

// UpdateTask handles the partial task update request.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	actorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), actorID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// DeleteTask handles the task deletion request.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	actorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	if err := h.uc.DeleteTask(c.Request().Context(), actorID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// paginationParams reads offset/limit query parameters, tolerating absent
// or malformed values. The use cases clamp and default the results.
func paginationParams(c echo.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))

	return offset, limit
}
