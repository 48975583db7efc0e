package schedule

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TBASentinel marks an unscheduled ("TBA") class time. It fails the
// containment test against any real interval.
const TBASentinel = -1

var errMalformedTime = errors.New("malformed 12-hour time")

// ParseClockTime converts a 12-hour clock string ("10:30AM", "04:30PM")
// into decimal hours. "TBA" parses to TBASentinel without error. Noon
// ("12:XXPM") maps to hour 12; "12:XXAM" is not special-cased, matching
// the schedule feed this was built against (midnight never appears in it).
func ParseClockTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "TBA") {
		return TBASentinel, nil
	}

	var pm bool
	switch {
	case strings.HasSuffix(s, "AM"):
		s = strings.TrimSuffix(s, "AM")
	case strings.HasSuffix(s, "PM"):
		s = strings.TrimSuffix(s, "PM")
		pm = true
	default:
		return 0, errors.Wrapf(errMalformedTime, "%q", s)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, errors.Wrapf(errMalformedTime, "%q", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, errors.Wrapf(errMalformedTime, "%q", s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, errors.Wrapf(errMalformedTime, "%q", s)
	}

	if pm && hour != 12 {
		hour += 12
	}
	return float64(hour) + float64(minute)/60, nil
}
