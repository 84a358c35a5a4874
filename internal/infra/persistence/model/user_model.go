package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The unique constraints on username and email are the authoritative guard
// against duplicate registrations; the application-level checks only give
// nicer errors for the common path.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(50);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt    time.Time

	AssignedTasks []TaskModel `gorm:"foreignKey:AssigneeID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
