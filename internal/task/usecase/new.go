package usecase

import (
	"context"

	"task-tracker/internal/task/repository"
	"task-tracker/pkg/gcalendar"
	pkgLog "task-tracker/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client the use case needs.
type CalendarClient interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   CalendarClient
	calendarID string
}

// New creates a new task UseCase instance. calendar may be nil to disable event sync.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar CalendarClient,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
	}
}
