package progress

import (
	"math"
	"strings"
	"time"
)

// Min and Max bound every progress figure.
const (
	Min = 0
	Max = 100
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize coerces a manual progress value into [0,100].
// NaN and infinities become 0; fractions are rounded.
func Normalize(manual float64) int {
	if math.IsNaN(manual) || math.IsInf(manual, 0) {
		return Min
	}
	return clamp(int(math.Round(manual)))
}

// ParseDate parses s as a calendar date or RFC3339 timestamp.
// The second result is false when s is empty or unparseable.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimeProgress is the share of the start..end interval that has elapsed at now,
// measured in whole hours and expressed as a percentage.
func TimeProgress(start, end, now time.Time) int {
	if !end.After(start) {
		if now.After(end) {
			return Max
		}
		return Min
	}
	if !now.After(start) {
		return Min
	}
	if now.After(end) {
		return Max
	}

	total := wholeHours(end.Sub(start))
	elapsed := wholeHours(now.Sub(start))
	if total <= 0 {
		return Min
	}
	return clamp(int(math.Round(float64(elapsed) / float64(total) * 100)))
}

// Compute derives the progress figures of in at now.
func Compute(in Input, now time.Time) Result {
	manual := Normalize(in.Manual)

	end := in.End
	if end == nil {
		end = in.Due
	}
	if in.Start == nil || end == nil {
		return Result{Manual: manual, Effective: manual}
	}

	dynamic := TimeProgress(*in.Start, *end, now)
	return Result{
		Manual:    manual,
		Dynamic:   &dynamic,
		Effective: combine(manual, &dynamic),
	}
}

// Aggregate returns the rounded mean effective progress of results,
// or nil when results is empty.
func Aggregate(results []Result) *int {
	if len(results) == 0 {
		return nil
	}
	sum := 0
	for _, r := range results {
		sum += r.Effective
	}
	avg := clamp(int(math.Round(float64(sum) / float64(len(results)))))
	return &avg
}

// Rollup computes a project's progress. Its dynamic value is the larger of the
// mean effective progress of its tasks and the project's own time progress.
func Rollup(in Input, tasks []Result, now time.Time) Result {
	own := Compute(in, now)

	var dynamic *int
	for _, candidate := range []*int{Aggregate(tasks), own.Dynamic} {
		if candidate == nil {
			continue
		}
		if dynamic == nil || *candidate > *dynamic {
			v := *candidate
			dynamic = &v
		}
	}

	return Result{
		Manual:    own.Manual,
		Dynamic:   dynamic,
		Effective: combine(own.Manual, dynamic),
	}
}

func combine(manual int, dynamic *int) int {
	if dynamic == nil || *dynamic < manual {
		return manual
	}
	return clamp(*dynamic)
}

func wholeHours(d time.Duration) int64 {
	return int64(d / time.Hour)
}

func clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}
