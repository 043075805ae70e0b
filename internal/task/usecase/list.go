package usecase

import (
	"context"
	"sort"

	"task-tracker/internal/task"
)

// List loads every stored task and classifies it against input.Today.
// Store order is kept unless input.SortByDeadline is set.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	res, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List LoadAll: %v", err)
		return task.ListOutput{}, err
	}

	invalidRecords.Set(float64(len(res.Invalid)))
	if n := len(res.Invalid); n > 0 {
		uc.l.Warnf(ctx, "uc.List: %d stored records could not be parsed", n)
	}

	items := make([]task.Item, 0, len(res.Tasks))
	counts := map[task.Urgency]int{}
	for _, t := range res.Tasks {
		u := task.ClassifyUrgency(t.Deadline, input.Today)
		counts[u]++
		items = append(items, task.Item{
			Task:       t,
			Urgency:    u,
			Suggestion: u.Suggestion(),
		})
	}
	uc.recordUrgencyCounts(counts)

	if input.SortByDeadline {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Task.Deadline.Before(items[j].Task.Deadline)
		})
	}

	return task.ListOutput{
		Items:   items,
		Invalid: res.Invalid,
	}, nil
}

func (uc *implUseCase) recordUrgencyCounts(counts map[task.Urgency]int) {
	for _, u := range []task.Urgency{task.UrgencyOverdue, task.UrgencyToday, task.UrgencySoon, task.UrgencyUpcoming} {
		tasksByUrgency.WithLabelValues(string(u)).Set(float64(counts[u]))
	}
}
