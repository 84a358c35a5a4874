// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Passwords longer than the algorithm's byte limit are silently truncated,
	// never rejected.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// The same truncation applied at hash time is applied here.
	Check(password, hash string) bool
}
