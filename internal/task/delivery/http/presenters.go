package http

import (
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline" example:"2024-12-31"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Description: r.Description,
		Priority:    r.Priority,
		Deadline:    r.Deadline,
	}
}

type listReq struct {
	Sort  string `form:"sort"  binding:"omitempty,oneof=deadline"`
	Today string `form:"today"`
}

func (r listReq) toInput(today time.Time) task.ListInput {
	return task.ListInput{
		Today:          today,
		SortByDeadline: r.Sort == "deadline",
	}
}

type exportReq struct {
	Format string `form:"format" binding:"omitempty,oneof=csv json pdf"`
	Today  string `form:"today"`
}

func (r exportReq) toInput(today time.Time) task.ExportInput {
	return task.ExportInput{
		Format: r.Format,
		Today:  today,
	}
}

// formReq is the urlencoded body posted by the HTML form.
type formReq struct {
	Description string `form:"description"`
	Priority    string `form:"priority"`
	Deadline    string `form:"deadline"`
}

func (r formReq) toInput() task.CreateInput {
	return task.CreateInput{
		Description: r.Description,
		Priority:    r.Priority,
		Deadline:    r.Deadline,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Description string        `json:"description"`
	Priority    string        `json:"priority"`
	Deadline    response.Date `json:"deadline" swaggertype:"string" example:"2024-12-31"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		Description: t.Description,
		Priority:    t.Priority.String(),
		Deadline:    response.Date(t.Deadline),
	}
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(o task.CreateOutput) createResp {
	return createResp{
		Task:         newTaskResp(o.Task),
		CalendarLink: o.CalendarLink,
	}
}

type itemResp struct {
	taskResp
	Urgency    string `json:"urgency"`
	Suggestion string `json:"suggestion"`
}

type invalidResp struct {
	Line        int    `json:"line"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Message     string `json:"message"`
}

type listResp struct {
	Today   response.Date `json:"today" swaggertype:"string" example:"2024-12-31"`
	Total   int           `json:"total"`
	Items   []itemResp    `json:"items"`
	Invalid []invalidResp `json:"invalid"`
}

func (h *handler) newListResp(o task.ListOutput, today time.Time) listResp {
	items := make([]itemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemResp{
			taskResp:   newTaskResp(it.Task),
			Urgency:    string(it.Urgency),
			Suggestion: it.Suggestion.String(),
		})
	}

	invalid := make([]invalidResp, 0, len(o.Invalid))
	for _, re := range o.Invalid {
		invalid = append(invalid, invalidResp{
			Line:        re.Line,
			Description: re.Description,
			Deadline:    re.Deadline,
			Message:     re.Error(),
		})
	}

	return listResp{
		Today:   response.Date(today),
		Total:   len(items),
		Items:   items,
		Invalid: invalid,
	}
}

// --- HTML view model ---

type rowView struct {
	Description string
	Priority    string
	Deadline    string
	Urgency     string
	Suggestion  string
}

type pageView struct {
	Today      string
	Priorities []string
	Rows       []rowView
	Notices    []string
	Error      string
	Form       formReq
}

func (h *handler) newPageView(o task.ListOutput, today time.Time) pageView {
	rows := make([]rowView, 0, len(o.Items))
	for _, it := range o.Items {
		rows = append(rows, rowView{
			Description: it.Task.Description,
			Priority:    it.Task.Priority.String(),
			Deadline:    it.Task.DeadlineString(),
			Urgency:     string(it.Urgency),
			Suggestion:  it.Suggestion.String(),
		})
	}

	notices := make([]string, 0, len(o.Invalid))
	for _, re := range o.Invalid {
		notices = append(notices, re.Error())
	}

	priorities := make([]string, 0, 3)
	for _, p := range model.Priorities() {
		priorities = append(priorities, p.String())
	}

	return pageView{
		Today:      today.Format(model.DateLayout),
		Priorities: priorities,
		Rows:       rows,
		Notices:    notices,
	}
}
