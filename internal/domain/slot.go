package domain

import "github.com/m04kA/FlexDesk-BookingService/pkg/types"

// DeskSlot is a candidate start time for a desk, as shown on the read side
type DeskSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
	Reason          RejectionReason // empty when Available
}
