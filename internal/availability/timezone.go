package availability

import (
	"strings"
	"time"
)

// LoadLocation resolves an IANA timezone label, falling back when the label is
// empty or unknown.
func LoadLocation(label string, fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.UTC
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return fallback
	}
	loc, err := time.LoadLocation(label)
	if err != nil {
		return fallback
	}
	return loc
}

// Request is a requested desk interval expressed as wall-clock time in Location.
type Request struct {
	Date            time.Time // civil date
	StartMinute     int
	DurationMinutes int
	Location        *time.Location
}

// Interval is a request projected onto the wall clock of some timezone.
// End may exceed 1439 when the interval crosses midnight.
type Interval struct {
	Date  time.Time // civil date
	Start int
	End   int
}

// Weekday returns the day of week, 0 = Sunday.
func (i Interval) Weekday() int {
	return int(i.Date.Weekday())
}

// Instant returns the absolute start time of the request.
func (r Request) Instant() time.Time {
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := r.Date.Date()
	return time.Date(y, m, d, 0, r.StartMinute, 0, 0, loc)
}

// In projects the request onto the wall clock of loc.
func (r Request) In(loc *time.Location) Interval {
	if loc == nil {
		loc = time.UTC
	}
	local := r.Instant().In(loc)
	start := local.Hour()*60 + local.Minute()
	return Interval{
		Date:  CivilDate(local),
		Start: start,
		End:   start + r.DurationMinutes,
	}
}
