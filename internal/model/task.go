package model

import "time"

// Task statuses.
const (
	TaskStatusInProgress = "Devam Ediyor"
	TaskStatusOnHold     = "Beklemede"
	TaskStatusDone       = "Tamamlandı"
	TaskStatusActive     = "Aktif"
)

// TaskStatuses lists every accepted task status.
var TaskStatuses = []string{TaskStatusInProgress, TaskStatusOnHold, TaskStatusDone, TaskStatusActive}

// IsTaskStatus reports whether s is one of TaskStatuses.
func IsTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Task is a unit of work inside a project.
type Task struct {
	ID              int64
	ProjectID       int64
	ProjectName     string
	ProjectOwnerID  int64
	Title           string
	Description     string
	AssigneeID      *int64
	AssigneeName    string
	AssigneeEmail   string
	StartDate       Date
	EndDate         Date
	DueDate         Date
	Status          string
	Progress        int
	Dependencies    []int64
	CalendarEventID string
	CreatedAt       time.Time
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

// IsAssignedTo reports whether userID is the assignee of t.
func (t Task) IsAssignedTo(userID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// FinishDate is the end date, falling back to the due date.
func (t Task) FinishDate() Date {
	if t.EndDate.Valid {
		return t.EndDate
	}
	return t.DueDate
}
