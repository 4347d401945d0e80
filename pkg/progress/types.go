package progress

import "time"

// Input is everything needed to derive the effective progress of one record.
// End falls back to Due when End is nil.
type Input struct {
	Manual float64
	Start  *time.Time
	End    *time.Time
	Due    *time.Time
}

// Result holds the three progress figures shown for a record.
// Dynamic is nil when no time-based estimate could be made.
type Result struct {
	Manual    int  `json:"manual_progress"`
	Dynamic   *int `json:"dynamic_progress"`
	Effective int  `json:"effective_progress"`
}

// Record is a fetched record whose dates have not been parsed yet.
// Dynamic and Effective hold values cached from a previous computation
// (or sent by the backend) and are reused unless recomputation is forced.
type Record struct {
	Manual    float64
	Start     string
	End       string
	Due       string
	Dynamic   *int
	Effective *int
}
