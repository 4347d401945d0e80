package task

import (
	"project-tracker/internal/model"
	"project-tracker/pkg/progress"
)

// --- UseCase Inputs ---

type CreateInput struct {
	ProjectID    int64
	Title        string
	Description  string
	AssigneeID   *int64
	StartDate    model.Date
	EndDate      model.Date
	DueDate      model.Date
	Status       string
	Progress     int
	Dependencies []int64
}

// UpdateInput is a partial update. Nil fields are left unchanged.
// A zero AssigneeID unassigns the task; a non-nil empty Dependencies clears them.
type UpdateInput struct {
	ID           int64
	ProjectID    *int64
	Title        *string
	Description  *string
	AssigneeID   *int64
	StartDate    *model.Date
	EndDate      *model.Date
	DueDate      *model.Date
	Status       *string
	Progress     *int
	Dependencies *[]int64
}

// ListInput filters visible tasks. Zero values are ignored.
type ListInput struct {
	ProjectID  int64
	AssigneeID int64
	Status     string
}

// RangeInput holds optional date bounds. Each bound is YYYY-MM-DD or a relative
// expression such as "today" or "in 2 weeks".
type RangeInput struct {
	Start string
	End   string
}

// --- UseCase Outputs ---

// TaskOutput is a task with its progress figures.
type TaskOutput struct {
	Task     model.Task
	Progress progress.Result
}

// UserStat is the completion record of one user.
type UserStat struct {
	ID    int64
	Name  string
	Total int
	Done  int
	Rate  int
}

// SummaryOutput is the report panel payload.
type SummaryOutput struct {
	StatusCounts map[string]int
	Users        []UserStat
}

// SyncOutput is returned after mirroring a task to the calendar.
type SyncOutput struct {
	Task     TaskOutput
	EventID  string
	HtmlLink string
}
