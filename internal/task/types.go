package task

import (
	"time"

	"task-tracker/internal/model"
)

// CreateInput carries raw, unvalidated user input.
type CreateInput struct {
	Description string
	Priority    string
	Deadline    string
}

// CreateOutput is the persisted task plus the calendar event link when sync is on.
type CreateOutput struct {
	Task         model.Task
	CalendarLink string
}

// ListInput controls List. Today is the reference date for suggestions.
type ListInput struct {
	Today          time.Time
	SortByDeadline bool
}

// Item is a stored task annotated with its urgency.
type Item struct {
	Task       model.Task
	Urgency    Urgency
	Suggestion Suggestion
}

// ListOutput holds every parseable task and the records that failed to parse.
type ListOutput struct {
	Items   []Item
	Invalid []*RecordError
}

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// ExportInput selects the rendering of the task list.
type ExportInput struct {
	Format string
	Today  time.Time
}

// ExportOutput is a rendered task list ready to be written out.
type ExportOutput struct {
	Data        []byte
	ContentType string
	Filename    string
}
