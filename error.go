package slm

import "fmt"

// Fixed messages reported with a CallError.
const (
	msgOpen      = "failed to open window"
	msgClose     = "failed to close window"
	msgInfo      = "failed to get window size"
	msgDisplay   = "failed to display data"
	msgSetOffset = "failed to set offset"
	msgGetOffset = "failed to get offset"
)

// CallError is returned when the display library reports a failure.
type CallError struct {
	// Op is the library entry point.
	Op string

	// Code is the raw return code.
	Code int32

	// Message describes the failed operation.
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("slm: %s: %s (return value %d)", e.Op, e.Message, e.Code)
}

// Is reports whether target is ErrNativeCall.
func (e *CallError) Is(target error) bool {
	return target == ErrNativeCall
}

// check turns a return code into an error. The library signals success with 0, except for the
// entry points that are inverted, which return nonzero on success.
func check(op string, code int32, inverted bool, message string) error {
	if debug {
		logf("%s returned %d", op, code)
	}

	failed := code != 0
	if inverted {
		failed = code == 0
	}
	if failed {
		return &CallError{
			Op:      op,
			Code:    code,
			Message: message,
		}
	}
	return nil
}
