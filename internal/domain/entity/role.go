// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
	// RoleStaff indicates a regular staff role. This is the default for new accounts.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}
