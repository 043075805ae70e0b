package task

import (
	"strings"
	"time"

	"task-tracker/internal/model"
)

// ValidateDescription rejects blank descriptions. Non-blank text is kept as typed.
func ValidateDescription(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", newValidationError(FieldDescription, ErrEmptyDescription)
	}
	return raw, nil
}

// ValidatePriority accepts high, medium or low in any letter case.
func ValidatePriority(raw string) (model.Priority, error) {
	p, err := model.ParsePriority(raw)
	if err != nil {
		return "", newValidationError(FieldPriority, ErrInvalidPriority)
	}
	return p, nil
}

// ValidateDeadline accepts a strict YYYY-MM-DD calendar date.
func ValidateDeadline(raw string) (time.Time, error) {
	d, err := model.ParseDeadline(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, newValidationError(FieldDeadline, ErrInvalidDeadline)
	}
	return d, nil
}

// Validate checks every field and returns the first failure in form order.
func (in CreateInput) Validate() (model.Task, error) {
	desc, err := ValidateDescription(in.Description)
	if err != nil {
		return model.Task{}, err
	}
	prio, err := ValidatePriority(in.Priority)
	if err != nil {
		return model.Task{}, err
	}
	deadline, err := ValidateDeadline(in.Deadline)
	if err != nil {
		return model.Task{}, err
	}

	return model.Task{
		Description: desc,
		Priority:    prio,
		Deadline:    deadline,
	}, nil
}
