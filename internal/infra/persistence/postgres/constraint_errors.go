package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// pgx surfaces 23505 before GORM's translation kicks in on some paths
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

// violatesConstraint reports whether err is a unique violation on the named
// constraint, so duplicate email and duplicate username map to distinct outcomes.
func violatesConstraint(err error, constraint string) bool {
	return isUniqueConstraintViolation(err) &&
		strings.Contains(strings.ToLower(err.Error()), strings.ToLower(constraint))
}
