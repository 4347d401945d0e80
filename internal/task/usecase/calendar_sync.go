package usecase

import (
	"context"
	"errors"
	"fmt"

	"project-tracker/internal/model"
	"project-tracker/internal/task"
	"project-tracker/pkg/gcalendar"
)

// SyncCalendar creates or updates the all-day event mirroring a task.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sc model.Scope, id int64) (task.SyncOutput, error) {
	if uc.calendar == nil {
		return task.SyncOutput{}, task.ErrCalendarDisabled
	}

	t, err := uc.getVisible(ctx, sc, id)
	if err != nil {
		if !errors.Is(err, task.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.SyncCalendar GetOne: %v", err)
		}
		return task.SyncOutput{}, err
	}
	if !canModify(sc, t) {
		return task.SyncOutput{}, task.ErrForbidden
	}

	start, end, err := eventSpan(t)
	if err != nil {
		return task.SyncOutput{}, err
	}

	event, err := uc.calendar.UpsertEvent(ctx, gcalendar.EventRequest{
		CalendarID:  uc.calendarID,
		EventID:     t.CalendarEventID,
		Summary:     fmt.Sprintf("%s (%s)", t.Title, t.ProjectName),
		Description: t.Description,
		Start:       start.Time,
		End:         end.Time,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncCalendar UpsertEvent: %v", err)
		return task.SyncOutput{}, err
	}

	if event.ID != t.CalendarEventID {
		if err := uc.repo.SetCalendarEventID(ctx, t.ID, event.ID); err != nil {
			uc.l.Errorf(ctx, "uc.SyncCalendar SetCalendarEventID: %v", err)
			return task.SyncOutput{}, err
		}
		t.CalendarEventID = event.ID
	}
	uc.l.Infof(ctx, "uc.SyncCalendar: task %d mirrored to event %s", t.ID, event.ID)

	return task.SyncOutput{
		Task:     output(t, uc.now()),
		EventID:  event.ID,
		HtmlLink: event.HtmlLink,
	}, nil
}

// eventSpan is start..end, where a missing end falls back to the due date and
// a missing bound takes the value of the other one.
func eventSpan(t model.Task) (model.Date, model.Date, error) {
	start, end := t.StartDate, t.FinishDate()
	if !start.Valid {
		start = end
	}
	if !end.Valid {
		end = start
	}
	if !start.Valid {
		return model.Date{}, model.Date{}, task.ErrMissingDates
	}
	if start.After(end) {
		return model.Date{}, model.Date{}, task.ErrInvalidDateRange
	}
	return start, end, nil
}
