package domain

import "time"

// Slot is a half-open time window [StartDatetime, EndDatetime).
// It carries no identity fields and is the only representation of a
// booking ever exposed to callers without an ownership relation. The
// same shape describes venue unavailability windows.
type Slot struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// Overlaps reports whether [start, end) intersects the slot.
// Two half-open windows overlap iff s1 < e2 && e1 > s2; windows that
// merely touch at a boundary do not conflict.
func (s Slot) Overlaps(start, end time.Time) bool {
	return start.Before(s.EndDatetime) && end.After(s.StartDatetime)
}

// AnyOverlaps reports whether [start, end) intersects any of the given
// windows. Returns on the first hit. Malformed windows (end <= start)
// are a caller precondition, not handled here.
func AnyOverlaps(start, end time.Time, windows []Slot) bool {
	for _, w := range windows {
		if w.Overlaps(start, end) {
			return true
		}
	}
	return false
}
