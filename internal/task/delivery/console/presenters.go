package console

import (
	"fmt"
	"strings"

	"task-tracker/internal/task"
)

const tableRule = 60

func (h *handler) printTable(items []task.Item) {
	fmt.Fprintf(h.out, "%-20s | %-8s | %-10s | %s\n", "Description", "Priority", "Deadline", "Suggestion")
	h.println(strings.Repeat("-", tableRule))
	for _, it := range items {
		fmt.Fprintf(h.out, "%-20s | %-8s | %-10s | %s\n",
			it.Task.Description,
			it.Task.Priority,
			it.Task.DeadlineString(),
			it.Suggestion,
		)
	}
}
