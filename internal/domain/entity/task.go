// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single unit of work assigned to a user.
// AssigneeID is the user responsible for the task (its owner for
// authorization purposes); AssignedByID records who created it.
type Task struct {
	ID           uuid.UUID  // The unique identifier for this task.
	Title        string     // Short summary of the task.
	Description  string     // Optional free-form description.
	Status       TaskStatus // Current status. No transition rules are enforced; any valid status may be set.
	AssigneeID   uuid.UUID  // The user this task is assigned to.
	AssignedByID uuid.UUID  // The user who created the assignment.
	CreatedAt    time.Time  // Timestamp of when this task was created.
	UpdatedAt    time.Time  // Timestamp of the last mutation. Refreshed on every update.
}
