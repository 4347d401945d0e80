package gcalendar

import "time"

// EventRequest describes an all-day event spanning Start..End (both inclusive).
// A non-empty EventID updates that event instead of creating a new one.
type EventRequest struct {
	CalendarID  string
	EventID     string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Event is a simplified representation of a Google Calendar event.
// For all-day events End is the last day of the event, not Google's exclusive end.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Start       time.Time
	End         time.Time
	AllDay      bool
}
