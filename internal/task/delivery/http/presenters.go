package http

import (
	"project-tracker/internal/model"
	"project-tracker/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Project      int64   `json:"project"      binding:"required,min=1"`
	Title        string  `json:"title"        binding:"required,min=1,max=100"`
	Description  string  `json:"description"  binding:"max=5000"`
	Assignee     *int64  `json:"assignee"     binding:"omitempty,min=1"`
	StartDate    string  `json:"start_date"   binding:"date"`
	EndDate      string  `json:"end_date"     binding:"date"`
	DueDate      string  `json:"due_date"     binding:"date"`
	Status       string  `json:"status"       binding:"max=20"`
	Progress     int     `json:"progress"     binding:"progress"`
	Dependencies []int64 `json:"dependencies" binding:"omitempty,dive,min=1"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		ProjectID:    r.Project,
		Title:        r.Title,
		Description:  r.Description,
		AssigneeID:   r.Assignee,
		StartDate:    parseDate(r.StartDate),
		EndDate:      parseDate(r.EndDate),
		DueDate:      parseDate(r.DueDate),
		Status:       r.Status,
		Progress:     r.Progress,
		Dependencies: r.Dependencies,
	}
}

// updateReq is a partial update. An empty string clears a date and assignee 0 unassigns.
type updateReq struct {
	ID           int64    `json:"-"`
	Project      *int64   `json:"project"      binding:"omitempty,min=1"`
	Title        *string  `json:"title"        binding:"omitempty,min=1,max=100"`
	Description  *string  `json:"description"  binding:"omitempty,max=5000"`
	Assignee     *int64   `json:"assignee"     binding:"omitempty,min=0"`
	StartDate    *string  `json:"start_date"   binding:"omitempty,date"`
	EndDate      *string  `json:"end_date"     binding:"omitempty,date"`
	DueDate      *string  `json:"due_date"     binding:"omitempty,date"`
	Status       *string  `json:"status"       binding:"omitempty,max=20"`
	Progress     *int     `json:"progress"     binding:"omitempty,progress"`
	Dependencies *[]int64 `json:"dependencies" binding:"omitempty,dive,min=1"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:           r.ID,
		ProjectID:    r.Project,
		Title:        r.Title,
		Description:  r.Description,
		AssigneeID:   r.Assignee,
		StartDate:    parseDatePtr(r.StartDate),
		EndDate:      parseDatePtr(r.EndDate),
		DueDate:      parseDatePtr(r.DueDate),
		Status:       r.Status,
		Progress:     r.Progress,
		Dependencies: r.Dependencies,
	}
}

// parseDate expects input already checked by the date binding.
func parseDate(s string) model.Date {
	d, _ := model.ParseDate(s)
	return d
}

func parseDatePtr(s *string) *model.Date {
	if s == nil {
		return nil
	}
	d := parseDate(*s)
	return &d
}

type listReq struct {
	Project  int64  `form:"project"  binding:"omitempty,min=1"`
	Assignee int64  `form:"assignee" binding:"omitempty,min=1"`
	Status   string `form:"status"`
}

type ganttReq struct {
	ProjectID int64 `form:"project_id" binding:"omitempty,min=1"`
}

type rangeReq struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// --- Response DTOs ---

type taskResp struct {
	ID                int64      `json:"id"`
	Project           int64      `json:"project"`
	ProjectName       string     `json:"project_name"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Assignee          *int64     `json:"assignee"`
	AssigneeName      *string    `json:"assignee_name"`
	StartDate         model.Date `json:"start_date"`
	EndDate           model.Date `json:"end_date"`
	DueDate           model.Date `json:"due_date"`
	Status            string     `json:"status"`
	Progress          int        `json:"progress"`
	DynamicProgress   *int       `json:"dynamic_progress"`
	EffectiveProgress int        `json:"effective_progress"`
	Dependencies      []int64    `json:"dependencies"`
	CalendarEventID   string     `json:"calendar_event_id,omitempty"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dependencies(t model.Task) []int64 {
	if t.Dependencies == nil {
		return []int64{}
	}
	return t.Dependencies
}

func newTaskResp(out task.TaskOutput) taskResp {
	t := out.Task
	return taskResp{
		ID:                t.ID,
		Project:           t.ProjectID,
		ProjectName:       t.ProjectName,
		Title:             t.Title,
		Description:       t.Description,
		Assignee:          t.AssigneeID,
		AssigneeName:      optional(t.AssigneeName),
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		DueDate:           t.DueDate,
		Status:            t.Status,
		Progress:          out.Progress.Manual,
		DynamicProgress:   out.Progress.Dynamic,
		EffectiveProgress: out.Progress.Effective,
		Dependencies:      dependencies(t),
		CalendarEventID:   t.CalendarEventID,
	}
}

func newTaskListResp(outs []task.TaskOutput) []taskResp {
	items := make([]taskResp, len(outs))
	for i, out := range outs {
		items[i] = newTaskResp(out)
	}
	return items
}

// ganttResp is one bar of the Gantt chart. Progress is the effective progress
// and assignee is the assignee's email. DueDate lets clients recompute progress
// for tasks without an end date.
type ganttResp struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Start           model.Date `json:"start"`
	End             model.Date `json:"end"`
	DueDate         model.Date `json:"due_date"`
	Progress        int        `json:"progress"`
	ManualProgress  int        `json:"manual_progress"`
	DynamicProgress *int       `json:"dynamic_progress"`
	Status          string     `json:"status"`
	Assignee        *string    `json:"assignee"`
	AssigneeName    *string    `json:"assignee_name"`
	ProjectName     string     `json:"project_name"`
	Dependencies    []int64    `json:"dependencies"`
}

func newGanttResp(outs []task.TaskOutput) []ganttResp {
	items := make([]ganttResp, len(outs))
	for i, out := range outs {
		t := out.Task
		items[i] = ganttResp{
			ID:              t.ID,
			Title:           t.Title,
			Start:           t.StartDate,
			End:             t.EndDate,
			DueDate:         t.DueDate,
			Progress:        out.Progress.Effective,
			ManualProgress:  out.Progress.Manual,
			DynamicProgress: out.Progress.Dynamic,
			Status:          t.Status,
			Assignee:        optional(t.AssigneeEmail),
			AssigneeName:    optional(t.AssigneeName),
			ProjectName:     t.ProjectName,
			Dependencies:    dependencies(t),
		}
	}
	return items
}

type calendarResp struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Start    model.Date `json:"start"`
	End      model.Date `json:"end"`
	Assignee *int64     `json:"assignee"`
	Project  int64      `json:"project"`
}

func newCalendarResp(outs []task.TaskOutput) []calendarResp {
	items := make([]calendarResp, len(outs))
	for i, out := range outs {
		t := out.Task
		items[i] = calendarResp{
			ID:       t.ID,
			Title:    t.Title,
			Start:    t.StartDate,
			End:      t.EndDate,
			Assignee: t.AssigneeID,
			Project:  t.ProjectID,
		}
	}
	return items
}

type userStatResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
	Done  int    `json:"done"`
	Rate  int    `json:"rate"`
}

type summaryResp struct {
	StatusCounts map[string]int `json:"status_counts"`
	Users        []userStatResp `json:"users"`
}

func newSummaryResp(out task.SummaryOutput) summaryResp {
	users := make([]userStatResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = userStatResp(u)
	}
	return summaryResp{StatusCounts: out.StatusCounts, Users: users}
}

type syncResp struct {
	EventID  string   `json:"event_id"`
	HtmlLink string   `json:"html_link"`
	Task     taskResp `json:"task"`
}

func newSyncResp(out task.SyncOutput) syncResp {
	return syncResp{
		EventID:  out.EventID,
		HtmlLink: out.HtmlLink,
		Task:     newTaskResp(out.Task),
	}
}
