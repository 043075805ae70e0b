package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"task-tracker/internal/task"
)

const (
	choiceAdd  = "1"
	choiceView = "2"
	choiceExit = "3"
)

// Run loops over the menu until the user exits or input ends.
func (h *handler) Run() error {
	ctx := context.Background()

	for {
		h.printMenu()
		choice, err := h.prompt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case choiceAdd:
			err = h.addTask(ctx)
		case choiceView:
			err = h.viewTasks(ctx)
		case choiceExit:
			return nil
		default:
			h.println("Invalid choice. Please try again.")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// Storage errors end the operation, not the session.
			h.l.Errorf(ctx, "console: %v", err)
			h.println("Error: " + err.Error())
		}
	}
}

func (h *handler) printMenu() {
	h.println("")
	h.println("Menu:")
	h.println("1. Add a new task")
	h.println("2. View all tasks")
	h.println("3. Exit")
}

// addTask prompts field by field, re-asking until each one validates.
func (h *handler) addTask(ctx context.Context) error {
	var input task.CreateInput
	var err error

	if input.Description, err = h.promptUntil("Enter task description: ", func(s string) error {
		_, err := task.ValidateDescription(s)
		return err
	}); err != nil {
		return err
	}

	if input.Priority, err = h.promptUntil("Enter priority (high/medium/low): ", func(s string) error {
		if _, err := task.ValidatePriority(s); err != nil {
			return errInvalidPriorityPrompt
		}
		return nil
	}); err != nil {
		return err
	}

	if input.Deadline, err = h.promptUntil("Enter deadline (YYYY-MM-DD): ", func(s string) error {
		_, err := task.ValidateDeadline(s)
		return err
	}); err != nil {
		return err
	}

	out, err := h.uc.Create(ctx, input)
	if err != nil {
		return err
	}

	h.println("Task added successfully.")
	if out.CalendarLink != "" {
		h.println("Calendar event: " + out.CalendarLink)
	}
	return nil
}

// viewTasks prints every task sorted by deadline, with parse failures reported first.
func (h *handler) viewTasks(ctx context.Context) error {
	out, err := h.uc.List(ctx, task.ListInput{
		Today:          h.today(),
		SortByDeadline: true,
	})
	if err != nil {
		return err
	}

	for _, bad := range out.Invalid {
		h.println(bad.Error())
	}

	if len(out.Items) == 0 {
		h.println("No tasks found.")
		return nil
	}

	h.printTable(out.Items)
	return nil
}
