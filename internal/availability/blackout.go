package availability

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/pkg/types"
)

// IntersectsBlackout reports whether [start, end) on date hits any blackout.
// A blackout without both bounds parseable blocks the whole day.
func IntersectsBlackout(blackouts []domain.BlackoutDate, date time.Time, start, end int) bool {
	for _, b := range blackouts {
		if !SameDate(b.Date, date) {
			continue
		}
		if b.IsFullDay() {
			return true
		}

		blackoutStart, okStart := parseOptional(b.StartTime)
		blackoutEnd, okEnd := parseOptional(b.EndTime)
		if !okStart || !okEnd {
			return true
		}

		if start < blackoutEnd && end > blackoutStart {
			return true
		}
	}
	return false
}

func parseOptional(ts *types.TimeString) (int, bool) {
	if ts == nil {
		return 0, false
	}
	return ParseTime(ts.String())
}
