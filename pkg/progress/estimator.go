package progress

import "time"

// Estimator computes progress against an injected Clock.
type Estimator struct {
	clock Clock
}

// New returns an Estimator reading now from clock. A nil clock uses SystemClock.
func New(clock Clock) *Estimator {
	if clock == nil {
		clock = SystemClock
	}
	return &Estimator{clock: clock}
}

// Now returns the estimator's current time.
func (e *Estimator) Now() time.Time {
	return e.clock.Now()
}

// Estimate computes the progress figures of in at the clock's current time.
func (e *Estimator) Estimate(in Input) Result {
	return Compute(in, e.clock.Now())
}

// Rollup computes project progress from its own dates and its tasks' results.
func (e *Estimator) Rollup(in Input, tasks []Result) Result {
	return Rollup(in, tasks, e.clock.Now())
}

// Ensure fills in the progress figures of r. Cached Dynamic and Effective
// values are kept unless force is set.
func (e *Estimator) Ensure(r Record, force bool) Record {
	return ensure(r, e.clock.Now(), force)
}

// EnsureList applies Ensure to every record and returns a new slice.
// All records are evaluated against the same instant.
func (e *Estimator) EnsureList(records []Record, force bool) []Record {
	if records == nil {
		return nil
	}
	now := e.clock.Now()
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = ensure(r, now, force)
	}
	return out
}

func ensure(r Record, now time.Time, force bool) Record {
	manual := Normalize(r.Manual)

	dynamic := r.Dynamic
	if dynamic == nil || force {
		dynamic = Compute(r.input(), now).Dynamic
	}

	effective := r.Effective
	if effective == nil || force {
		v := combine(manual, dynamic)
		effective = &v
	}

	r.Manual = float64(manual)
	r.Dynamic = dynamic
	r.Effective = effective
	return r
}

func (r Record) input() Input {
	in := Input{Manual: r.Manual}
	if t, ok := ParseDate(r.Start); ok {
		in.Start = &t
	}
	if t, ok := ParseDate(r.End); ok {
		in.End = &t
	}
	if t, ok := ParseDate(r.Due); ok {
		in.Due = &t
	}
	return in
}
