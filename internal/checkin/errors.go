package checkin

import (
	"errors"
	"fmt"

	"github.com/dhima/attendance-ledger/internal/models"
)

var (
	// ErrSessionNotActive is returned when check-ins are not open for the scope.
	ErrSessionNotActive = errors.New("attendance is not active in this scope")
	// ErrNoAttendeesSpecified is returned when a check-in names nobody.
	ErrNoAttendeesSpecified = errors.New("at least one attendee must be mentioned")
	// ErrTooManyAttendees is returned above models.MaxAttendeesPerCheckIn attendees.
	ErrTooManyAttendees = fmt.Errorf("at most %d attendees may be mentioned", models.MaxAttendeesPerCheckIn)
)

// ValidationError represents user-facing validation issues.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a new validation error.
func NewValidationError(format string, args ...interface{}) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}
