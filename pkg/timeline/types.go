package timeline

import "time"

const (
	// DefaultDayWidth is the pixel width of one day when none is configured.
	DefaultDayWidth = 28
	// DegenerateExtension widens a range whose start and end coincide.
	DegenerateExtension = 7
)

// Task is a task placed on the timeline. Zero Start or End means the date is unknown.
// A nil or zero Progress means no explicit progress was recorded.
type Task struct {
	ID       int64
	Title    string
	Start    time.Time
	End      time.Time
	Progress *int
}

// Range is an inclusive visible date range.
type Range struct {
	Start time.Time
	End   time.Time
}

// Bar is the pixel geometry of one task on the timeline.
type Bar struct {
	Left      int
	Width     int
	Progress  int
	Done      int
	Remaining int
	// Auto is set when Progress was derived from the task dates.
	Auto bool
}
