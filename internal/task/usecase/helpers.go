package usecase

import "task-tracker/internal/task"

var (
	exportColumns  = []string{"description", "priority", "deadline", "suggestion"}
	exportHeadings = []string{"Description", "Priority", "Deadline", "Suggestion"}
)

func exportRow(it task.Item) []string {
	return []string{
		it.Task.Description,
		it.Task.Priority.String(),
		it.Task.DeadlineString(),
		it.Suggestion.String(),
	}
}

// truncate shortens s so it roughly fits a PDF cell of width mm at 9pt Arial.
func truncate(s string, width float64) string {
	limit := int(width / 1.9)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
