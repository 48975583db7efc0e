package schedule

const (
	// DayStartHour is the hour of day slot 0 starts at.
	DayStartHour = 7
	// SlotMinutes is the width of one occupancy slot.
	SlotMinutes = 15
	// SlotsPerDay is how many slots one weekday mask encodes.
	SlotsPerDay = 60
)

// Interval is a free time window in decimal hours (10.5 = 10:30).
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether [start, end] fits entirely inside the interval.
// The tuple comparison mirrors the original advising tool:
// min(Start, start) == Start && max(End, end) == End. A TBA sentinel (-1)
// can never satisfy it against a real interval.
func (iv Interval) Contains(start, end float64) bool {
	return min(iv.Start, start) == iv.Start && max(iv.End, end) == iv.End
}

// FreeIntervals decodes a weekday occupancy mask with the standard 7:00 AM
// start and 15-minute slots.
func FreeIntervals(mask uint64) []Interval {
	return FreeIntervalsIn(mask, DayStartHour, SlotMinutes)
}

// FreeIntervalsIn decodes a 60-bit occupancy mask into an ascending,
// non-overlapping free-interval list. Bit i covers the slot starting at
// dayStartHour + slotMinutes*i; a set bit marks a free slot. A run open at
// the last slot is closed at loop end. An interval spans from its first
// slot's start to its last slot's start, matching the legacy encoding
// (bits 1..3 set -> (7.25, 7.75)).
func FreeIntervalsIn(mask uint64, dayStartHour, slotMinutes int) []Interval {
	slotTime := func(i int) float64 {
		return float64(dayStartHour) + float64(slotMinutes*i)/60
	}

	intervals := make([]Interval, 0, 4)
	curr, end := -1, -1
	for i := 0; i < SlotsPerDay; i++ {
		if mask&(1<<uint(i)) != 0 {
			if curr == -1 { // run opens
				curr, end = i, i
			} else {
				end++ // run extends
			}
			continue
		}
		if curr == -1 {
			continue // still inside a gap
		}
		intervals = append(intervals, Interval{Start: slotTime(curr), End: slotTime(end)})
		curr, end = -1, -1
	}
	if curr != -1 { // run still open at the last slot
		intervals = append(intervals, Interval{Start: slotTime(curr), End: slotTime(end)})
	}
	return intervals
}
