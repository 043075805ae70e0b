package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package. Messages are shown to the user as-is.
var (
	ErrEmptyDescription = errors.New("Task description cannot be empty.")
	ErrInvalidPriority  = errors.New("Priority must be high, medium, or low.")
	ErrInvalidDeadline  = errors.New("Invalid date format. Please use YYYY-MM-DD.")
	ErrUnknownFormat    = errors.New("export format must be csv, json, or pdf")
	ErrMalformedRecord  = errors.New("record does not have description, priority and deadline")
)

// Input fields named by ValidationError.
const (
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldDeadline    = "deadline"
)

// ValidationError reports raw input rejected before anything is written.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RecordError is a stored record that could not be turned back into a Task.
// It never aborts a load; callers decide whether to skip or show it.
type RecordError struct {
	Line        int // 1-based, header is line 1
	Description string
	Deadline    string
	Err         error
}

func (e *RecordError) Error() string {
	if errors.Is(e.Err, ErrMalformedRecord) {
		return fmt.Sprintf("Malformed task record on line %d.", e.Line)
	}
	return "Invalid deadline format for task: " + e.Description
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
