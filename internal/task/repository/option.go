package repository

import (
	"task-tracker/internal/model"
	"task-tracker/internal/task"
)

// AppendOptions holds the task to append.
type AppendOptions struct {
	Task model.Task
}

// LoadAllResult separates the records that parsed from those that did not.
type LoadAllResult struct {
	Tasks   []model.Task
	Invalid []*task.RecordError
}
