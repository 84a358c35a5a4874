package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. AssigneeID and AssignedByID both
// reference users.id (UUID). UpdatedAt is maintained by GORM on every save.
type TaskModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title        string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:varchar(255)"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	AssigneeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
