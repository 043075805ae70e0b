package reminder

import (
	"context"
	"fmt"

	"task-tracker/internal/task"
)

// Digest groups the tasks that need attention on a given day.
type Digest struct {
	Overdue  []task.Item
	DueToday []task.Item
	DueSoon  []task.Item
}

// Empty reports whether nothing needs attention.
func (d Digest) Empty() bool {
	return len(d.Overdue) == 0 && len(d.DueToday) == 0 && len(d.DueSoon) == 0
}

// Check builds today's digest and logs one line per pressing task.
func (s *Scheduler) Check(ctx context.Context) (Digest, error) {
	out, err := s.uc.List(ctx, task.ListInput{Today: s.today(), SortByDeadline: true})
	if err != nil {
		s.l.Errorf(ctx, "reminder.Check: %v", err)
		return Digest{}, err
	}

	var d Digest
	for _, it := range out.Items {
		switch it.Urgency {
		case task.UrgencyOverdue:
			d.Overdue = append(d.Overdue, it)
		case task.UrgencyToday:
			d.DueToday = append(d.DueToday, it)
		case task.UrgencySoon:
			d.DueSoon = append(d.DueSoon, it)
		}
	}

	if d.Empty() {
		s.l.Infof(ctx, "reminder: nothing due")
		return d, nil
	}

	for _, it := range d.Overdue {
		s.l.Warnf(ctx, "reminder: %q (%s) was due %s. %s", it.Task.Description, it.Task.Priority, it.Task.DeadlineString(), it.Suggestion)
	}
	for _, it := range append(d.DueToday, d.DueSoon...) {
		s.l.Infof(ctx, "reminder: %q (%s) due %s. %s", it.Task.Description, it.Task.Priority, it.Task.DeadlineString(), it.Suggestion)
	}
	return d, nil
}

// Start registers the digest under spec and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		_, _ = s.Check(ctx)
	}); err != nil {
		return fmt.Errorf("reminder.Start: invalid schedule %q: %w", spec, err)
	}

	s.cron.Start()
	s.l.Infof(ctx, "reminder: scheduled with %q", spec)
	return nil
}

// Stop halts the schedule and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
