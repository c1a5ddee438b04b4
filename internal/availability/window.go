package availability

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// WindowContains reports whether [start, end) on day falls inside w.
// Windows with unparseable bounds never match.
func WindowContains(w domain.AvailabilityWindow, day, start, end int) bool {
	if w.DayOfWeek != day {
		return false
	}
	if w.IsAllDay {
		return true
	}

	windowStart, ok := ParseTime(w.StartTime.String())
	if !ok {
		return false
	}
	windowEnd, ok := ParseTime(w.EndTime.String())
	if !ok {
		return false
	}

	return windowStart <= start && end <= windowEnd
}

// MatchesAnyWindow reports whether some window contains the interval.
// An empty window set means the listing is unrestricted.
func MatchesAnyWindow(windows []domain.AvailabilityWindow, day, start, end int) bool {
	if len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		if WindowContains(w, day, start, end) {
			return true
		}
	}
	return false
}

// WithinWindows is MatchesAnyWindow with the request shifted into each
// window's timezone. Windows without a timezone use listingLoc.
func WithinWindows(windows []domain.AvailabilityWindow, req Request, listingLoc *time.Location) bool {
	if len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		local := req.In(LoadLocation(w.Timezone, listingLoc))
		if WindowContains(w, local.Weekday(), local.Start, local.End) {
			return true
		}
	}
	return false
}
