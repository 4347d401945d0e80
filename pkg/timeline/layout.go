package timeline

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Layout maps dates onto a horizontal pixel axis anchored at Range.Start.
type Layout struct {
	Range    Range
	DayWidth int
}

// New builds a Layout. A non-positive dayWidth falls back to DefaultDayWidth.
func New(r Range, dayWidth int) Layout {
	if dayWidth <= 0 {
		dayWidth = DefaultDayWidth
	}
	return Layout{Range: r, DayWidth: dayWidth}
}

// DaysBetween returns the number of whole calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(float64(dateOf(b).Sub(dateOf(a))) / float64(day)))
}

// RangeOf returns the smallest range covering every known task date. When the
// earliest and latest dates coincide the end is pushed out by DegenerateExtension
// days. Without any known date the range starts at now.
func RangeOf(tasks []Task, now time.Time) Range {
	var r Range
	found := false
	for _, t := range tasks {
		for _, d := range []time.Time{t.Start, t.End} {
			if d.IsZero() {
				continue
			}
			d = dateOf(d)
			if !found {
				r = Range{Start: d, End: d}
				found = true
				continue
			}
			if d.Before(r.Start) {
				r.Start = d
			}
			if d.After(r.End) {
				r.End = d
			}
		}
	}
	if !found {
		today := dateOf(now)
		r = Range{Start: today, End: today}
	}
	if r.Start.Equal(r.End) {
		r.End = r.End.AddDate(0, 0, DegenerateExtension)
	}
	return r
}

// Offset is the left edge of a bar starting at start. Bars starting before the
// visible range are pinned to the left edge, so the result is never negative.
func (l Layout) Offset(start time.Time) int {
	days := DaysBetween(l.Range.Start, start)
	if days < 0 {
		days = 0
	}
	return days * l.DayWidth
}

// Width is the pixel width of the start..end interval, at least one day wide.
func (l Layout) Width(start, end time.Time) int {
	w := DaysBetween(start, end) * l.DayWidth
	if w < l.DayWidth {
		return l.DayWidth
	}
	return w
}

// DayCount is the number of header columns, both range endpoints included.
func (l Layout) DayCount() int {
	n := DaysBetween(l.Range.Start, l.Range.End) + 1
	if n < 0 {
		return 0
	}
	return n
}

// TotalWidth is the pixel width of the whole visible range.
func (l Layout) TotalWidth() int {
	return l.DayCount() * l.DayWidth
}

// Days lists the header dates of the visible range.
func (l Layout) Days() []time.Time {
	n := l.DayCount()
	days := make([]time.Time, 0, n)
	start := dateOf(l.Range.Start)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// Bar lays out t. The second result is false when t lacks a start or end date.
func (l Layout) Bar(t Task, now time.Time) (Bar, bool) {
	if t.Start.IsZero() || t.End.IsZero() {
		return Bar{}, false
	}

	b := Bar{
		Left:  l.Offset(t.Start),
		Width: l.Width(t.Start, t.End),
	}
	if t.Progress != nil && *t.Progress > 0 {
		b.Progress = clamp(*t.Progress)
	} else {
		b.Progress = AutoProgress(t.Start, t.End, now)
		b.Auto = true
	}
	b.Done = int(math.Round(float64(b.Width) * float64(b.Progress) / 100))
	b.Remaining = b.Width - b.Done
	if b.Remaining < 0 {
		b.Remaining = 0
	}
	return b, true
}

// AutoProgress estimates progress from elapsed whole days: 0 before start,
// 100 after end, the elapsed share of the interval in between.
func AutoProgress(start, end, now time.Time) int {
	total := DaysBetween(start, end)
	elapsed := DaysBetween(start, now)

	if total <= 0 {
		if DaysBetween(end, now) > 0 {
			return 100
		}
		return 0
	}
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 100
	}
	return clamp(int(math.Round(float64(elapsed) / float64(total) * 100)))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
