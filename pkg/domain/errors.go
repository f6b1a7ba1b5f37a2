package domain

import "errors"

// LogicError is a user-facing refusal: the command was understood but cannot
// apply in the current state. The program keeps running after reporting it.
type LogicError struct {
	Reason string
}

func (e *LogicError) Error() string {
	return e.Reason
}

// Logic builds a LogicError from a reason string.
func Logic(reason string) error {
	return &LogicError{Reason: reason}
}

// IsLogic returns true if err (or any wrapped error) is a LogicError.
func IsLogic(err error) bool {
	var le *LogicError
	return errors.As(err, &le)
}

// The refusals the lifecycle state machine can produce.
var (
	ErrNoSessions     = Logic("No previous sessions")
	ErrAlreadyStarted = Logic("Session already started")
	ErrNotRunning     = Logic("No session started")
)
