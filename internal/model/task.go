package model

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the on-disk and on-wire deadline format.
const DateLayout = "2006-01-02"

// Priority is the urgency level a user assigns to a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ErrUnknownPriority is returned by ParsePriority for values outside the fixed set.
var ErrUnknownPriority = errors.New("priority must be high, medium, or low")

// Priorities lists the accepted priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority normalizes raw input ("HIGH", " High ") to a Priority.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", ErrUnknownPriority
}

func (p Priority) String() string { return string(p) }

// Task is one to-do item. It has no identifier; two tasks are the same when all fields match.
type Task struct {
	Description string
	Priority    Priority
	Deadline    time.Time // date only, midnight UTC
}

// DeadlineString formats Deadline with DateLayout.
func (t Task) DeadlineString() string {
	return t.Deadline.Format(DateLayout)
}

// ParseDeadline parses a strict YYYY-MM-DD date into a midnight UTC time.
func ParseDeadline(raw string) (time.Time, error) {
	return time.Parse(DateLayout, raw)
}
