package reminder

import (
	"time"

	"github.com/robfig/cron/v3"

	"task-tracker/internal/task"
	pkgLog "task-tracker/pkg/log"
)

// Scheduler logs a digest of pressing tasks on a cron schedule.
type Scheduler struct {
	l     pkgLog.Logger
	uc    task.UseCase
	today func() time.Time
	cron  *cron.Cron
}

// New creates a Scheduler. Specs take a leading seconds field.
func New(l pkgLog.Logger, uc task.UseCase, today func() time.Time) *Scheduler {
	return &Scheduler{
		l:     l,
		uc:    uc,
		today: today,
		cron:  cron.New(cron.WithSeconds()),
	}
}
