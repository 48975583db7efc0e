package schedule

import "strings"

// Weekday is a single-letter meeting-day code.
type Weekday string

const (
	Monday    Weekday = "M"
	Tuesday   Weekday = "T"
	Wednesday Weekday = "W"
	Thursday  Weekday = "R"
	Friday    Weekday = "F"
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

// Name expands a day code to its full weekday name ("" for unknown codes).
func (d Weekday) Name() string {
	return weekdayNames[d]
}

// SplitDays expands a combined day string ("MW", "TR") into day codes.
// Unknown letters are dropped.
func SplitDays(days string) []Weekday {
	out := make([]Weekday, 0, len(days))
	for _, r := range strings.ToUpper(strings.TrimSpace(days)) {
		d := Weekday(r)
		if _, ok := weekdayNames[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// CandidateClass is one open class section under consideration.
type CandidateClass struct {
	CourseName    string  `json:"course_name" db:"course_name" csv:"course_name"`
	SectionNumber int     `json:"section_number" db:"section_number" csv:"section_number"`
	ClassNumber   int     `json:"class_number" db:"class_number" csv:"class_number"`
	Days          string  `json:"days" db:"days" csv:"days"`
	StartTime     string  `json:"start_time" db:"start_time" csv:"start_time"`
	EndTime       string  `json:"end_time" db:"end_time" csv:"end_time"`
	Instructor    string  `json:"instructor" db:"instructor" csv:"instructor"`
	OpenSeats     int     `json:"open_seats" db:"open_seats" csv:"open_seats"`
	Rating        float64 `json:"rating" db:"-" csv:"-"`
	Difficulty    float64 `json:"difficulty" db:"-" csv:"-"`
	Rated         bool    `json:"rated" db:"-" csv:"-"`
}

// Availability maps full weekday names ("Monday"...) to that day's
// occupancy mask.
type Availability map[string]uint64

// FreeByDay decodes every day's mask into free intervals.
func (a Availability) FreeByDay(dayStartHour, slotMinutes int) map[string][]Interval {
	free := make(map[string][]Interval, len(a))
	for day, mask := range a {
		free[day] = FreeIntervalsIn(mask, dayStartHour, slotMinutes)
	}
	return free
}
