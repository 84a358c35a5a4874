package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Check error message for PostgreSQL-specific unique constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// uniqueViolationColumn inspects a unique-violation error message and reports
// which of the given column names it mentions. Used to tell a username
// conflict from an email conflict when the DB constraint fires first.
func uniqueViolationColumn(err error, columns ...string) string {
	errMsg := strings.ToLower(err.Error())
	for _, column := range columns {
		if strings.Contains(errMsg, column) {
			return column
		}
	}

	return ""
}
