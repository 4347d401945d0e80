package viewer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"project-tracker/pkg/timeline"
)

const (
	maxLabelWidth = 28
	headerLabel   = "02.01"
)

// RenderGantt draws items as a text Gantt chart, dayWidth columns per day.
// Bars without an explicit progress fall back to the elapsed share and are marked with '*'.
func RenderGantt(items []Item, now time.Time, dayWidth int) string {
	if len(items) == 0 {
		return "No tasks.\n"
	}

	tasks := make([]timeline.Task, len(items))
	for i, it := range items {
		tasks[i] = it.timelineTask()
	}
	layout := timeline.New(timeline.RangeOf(tasks, now), dayWidth)
	labelW := labelWidth(items)

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s │%s\n", labelW, "", header(layout))
	for i, it := range items {
		fmt.Fprintf(&b, "%-*s │", labelW, truncate(it.Title, labelW))

		bar, ok := layout.Bar(tasks[i], now)
		if !ok {
			b.WriteString(" (no dates)\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", bar.Left))
		b.WriteString(strings.Repeat("█", bar.Done))
		b.WriteString(strings.Repeat("░", bar.Remaining))
		mark := ""
		if bar.Auto {
			mark = "*"
		}
		fmt.Fprintf(&b, " %d%%%s\n", bar.Progress, mark)
	}
	return b.String()
}

// header labels the day columns, leaving at least one blank between labels.
func header(l timeline.Layout) string {
	step := 1
	for step*l.DayWidth < len(headerLabel)+1 {
		step++
	}

	row := []byte(strings.Repeat(" ", l.TotalWidth()+len(headerLabel)))
	for i, day := range l.Days() {
		if i%step != 0 {
			continue
		}
		copy(row[i*l.DayWidth:], day.Format(headerLabel))
	}
	return strings.TrimRight(string(row), " ")
}

// RenderProjects writes a progress table of projects.
func RenderProjects(w io.Writer, items []Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tMANUAL\tDYNAMIC\tEFFECTIVE")
	for _, it := range items {
		dynamic := "-"
		if it.Record.Dynamic != nil {
			dynamic = fmt.Sprintf("%d%%", *it.Record.Dynamic)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.0f%%\t%s\t%d%%\n",
			it.ID, it.Title, it.Status, it.Record.Manual, dynamic, it.Effective())
	}
	return tw.Flush()
}

func labelWidth(items []Item) int {
	w := 0
	for _, it := range items {
		w = max(w, utf8.RuneCountInString(it.Title))
	}
	return min(w, maxLabelWidth)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
