package postgres

import (
	"strings"

	"parkospace/internal/errors"

	"gorm.io/gorm"
)

// violation is the kind of constraint a failed write broke.
type violation int

const (
	violationNone violation = iota
	violationUnique
	violationNotNull
	violationCheck
)

// Postgres SQLSTATE codes and SQLite messages, lowercased. GORM only translates
// errors when TranslateError is on, so the driver text is matched too.
var violationMarkers = []struct {
	kind    violation
	markers []string
}{
	{violationUnique, []string{"23505", "duplicate key", "unique constraint"}},
	{violationNotNull, []string{"23502", "null value", "not null"}},
	{violationCheck, []string{"23514", "check constraint"}},
}

func classifyViolation(err error) violation {
	switch {
	case err == nil:
		return violationNone
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return violationUnique
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return violationCheck
	}

	msg := strings.ToLower(err.Error())
	for _, m := range violationMarkers {
		for _, marker := range m.markers {
			if strings.Contains(msg, marker) {
				return m.kind
			}
		}
	}

	return violationNone
}
