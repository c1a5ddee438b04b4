package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Check-in code format
const (
	CheckInCodePrefix = "FD-"
	CheckInCodeDigits = 4
)

// Validation limits for host tooling
const (
	MaxTitleLength        = 200
	MaxDeskLabelLength    = 64
	MaxReasonLength       = 500
	MaxAllowedEmails      = 1000
	MaxWindowsPerListing  = 7 * 24
	MaxBlackoutsPerSave   = 1000
	MaxOverridesPerSave   = 1000
	DefaultTimezone       = "UTC"
	DefaultSlotStepMinute = 30
)

// ActiveStatuses statuses of bookings that still occupy a desk
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusUpcoming,
	StatusActive,
}
