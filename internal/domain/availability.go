package domain

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/pkg/types"
)

// AvailabilityWindow is a recurring weekly rule during which a listing accepts bookings
type AvailabilityWindow struct {
	ID                int64
	ListingID         int64
	DayOfWeek         int // 0 = Sunday
	StartTime         types.TimeString
	EndTime           types.TimeString
	Timezone          string // "" = listing timezone
	IsAllDay          bool
	AppliesToAllDesks bool
}

// BlackoutDate is a one-off exclusion. Without StartTime/EndTime the whole day is blocked.
type BlackoutDate struct {
	ID        int64
	ListingID int64
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
}

// IsFullDay returns true if the blackout has no time bounds
func (b *BlackoutDate) IsFullDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}

// DeskAvailabilityOverride is a per-desk, per-date exception.
// Only Available == false affects admission.
type DeskAvailabilityOverride struct {
	ID        int64
	DeskID    int64
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Available bool
}
