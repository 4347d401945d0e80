package viewer

import (
	"project-tracker/pkg/pmclient"
	"project-tracker/pkg/progress"
	"project-tracker/pkg/timeline"
)

// Item is one row of the viewer with the progress record it is drawn from.
type Item struct {
	ID     int64
	Title  string
	Status string
	Record progress.Record
}

// TaskItems converts a Gantt feed. The server's effective progress is kept
// as the cached value until the next forced recomputation.
func TaskItems(tasks []pmclient.GanttTask) []Item {
	items := make([]Item, len(tasks))
	for i, t := range tasks {
		effective := t.Progress
		items[i] = Item{
			ID:     t.ID,
			Title:  t.Title,
			Status: t.Status,
			Record: progress.Record{
				Manual:    float64(t.ManualProgress),
				Start:     t.Start,
				End:       t.End,
				Due:       t.DueDate,
				Dynamic:   t.DynamicProgress,
				Effective: &effective,
			},
		}
	}
	return items
}

// ProjectItems converts a project list.
func ProjectItems(projects []pmclient.Project) []Item {
	items := make([]Item, len(projects))
	for i, p := range projects {
		effective := p.EffectiveProgress
		items[i] = Item{
			ID:     p.ID,
			Title:  p.Name,
			Status: p.Status,
			Record: progress.Record{
				Manual:    float64(p.Progress),
				Start:     p.StartDate,
				End:       p.EndDate,
				Dynamic:   p.DynamicProgress,
				Effective: &effective,
			},
		}
	}
	return items
}

// Recompute forces a fresh progress computation of every item against est's clock.
func Recompute(est *progress.Estimator, items []Item) []Item {
	if items == nil {
		return nil
	}
	records := make([]progress.Record, len(items))
	for i, it := range items {
		records[i] = it.Record
	}
	records = est.EnsureList(records, true)

	out := make([]Item, len(items))
	for i, it := range items {
		it.Record = records[i]
		out[i] = it
	}
	return out
}

// Effective returns the item's effective progress, 0 when not computed yet.
func (it Item) Effective() int {
	if it.Record.Effective == nil {
		return 0
	}
	return *it.Record.Effective
}

func (it Item) timelineTask() timeline.Task {
	t := timeline.Task{ID: it.ID, Title: it.Title, Progress: it.Record.Effective}
	if start, ok := progress.ParseDate(it.Record.Start); ok {
		t.Start = start
	}
	end := it.Record.End
	if end == "" {
		end = it.Record.Due
	}
	if e, ok := progress.ParseDate(end); ok {
		t.End = e
	}
	return t
}
