package repository

import "strings"

// isUniqueConstraintError reports whether err came from a unique constraint
// violation, covering both the postgres and sqlite driver messages.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
