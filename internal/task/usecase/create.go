package usecase

import (
	"context"
	"errors"
	"fmt"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/task/repository"
	"task-tracker/pkg/gcalendar"
)

// Create validates raw input, appends the task and optionally mirrors it to Google Calendar.
// Nothing is written when validation fails.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	t, err := input.Validate()
	if err != nil {
		var ve *task.ValidationError
		if errors.As(err, &ve) {
			validationFailures.WithLabelValues(ve.Field).Inc()
		}
		uc.l.Debugf(ctx, "uc.Create: rejected input: %v", err)
		return task.CreateOutput{}, err
	}

	if err := uc.repo.Append(ctx, repository.AppendOptions{Task: t}); err != nil {
		uc.l.Errorf(ctx, "uc.Create Append: %v", err)
		return task.CreateOutput{}, err
	}
	tasksCreated.WithLabelValues(t.Priority.String()).Inc()

	uc.l.Infof(ctx, "uc.Create: added %q priority=%s deadline=%s", t.Description, t.Priority, t.DeadlineString())

	return task.CreateOutput{
		Task:         t,
		CalendarLink: uc.tryCreateCalendarEvent(ctx, t),
	}, nil
}

// tryCreateCalendarEvent returns the event link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Description,
		Description: fmt.Sprintf("Priority: %s", t.Priority),
		Date:        t.Deadline,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar event creation failed for %q (non-fatal): %v", t.Description, err)
		return ""
	}

	return event.HtmlLink
}
