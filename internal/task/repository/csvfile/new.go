package csvfile

import (
	"fmt"
	"sync"

	"task-tracker/internal/task/repository"
	"task-tracker/pkg/log"
)

// Header is the first row of every task file.
var Header = []string{"description", "priority", "deadline"}

type implRepository struct {
	path string
	l    log.Logger

	// mu serialises access from concurrent requests within this process only.
	mu sync.Mutex
}

// New creates a Repository backed by the delimited file at path.
// The file is not touched until the first Append or LoadAll.
func New(path string, l log.Logger) repository.Repository {
	if path == "" {
		panic("task/repository/csvfile: path is required")
	}
	return &implRepository{path: path, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/csvfile.%s", method)
}
