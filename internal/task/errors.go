package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound          = errors.New("task not found")
	ErrForbidden         = errors.New("only staff, the project owner or the assignee can modify this task")
	ErrProjectNotFound   = errors.New("project not found")
	ErrAssigneeNotFound  = errors.New("assignee not found")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrInvalidDependency = errors.New("dependencies must be other existing tasks")
	ErrInvalidDateExpr   = errors.New("unrecognized date expression")
	ErrCalendarDisabled  = errors.New("calendar sync is not configured")
	ErrMissingDates      = errors.New("task has no dates to schedule")
)
