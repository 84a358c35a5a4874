// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// PasswordHash is opaque to every layer above the repository and must never
// be serialized into a response body.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // The unique login name chosen at registration.
	Email        string    // The user's primary contact email, also unique and usable as a login identifier.
	PasswordHash string    // The bcrypt-hashed password. Never exposed outside the persistence boundary.
	IsActive     bool      // Whether the account may authenticate. New accounts start active.
	Role         Role      // The user's role: admin or staff. Defaults to staff.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
