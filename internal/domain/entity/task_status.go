// Package entity contains the core business objects of the project.
package entity

// TaskStatus represents the progress state of a task.
type TaskStatus string

const (
	// TaskStatusPending indicates a task that has not been started. This is the default.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress indicates a task that is being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusCompleted indicates a finished task.
	TaskStatusCompleted TaskStatus = "completed"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}
