package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrIllegalTransition is returned when a status change is not in the transition graph
var ErrIllegalTransition = errors.New("domain: illegal booking status transition")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusUpcoming  BookingStatus = "upcoming"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// legalTransitions is the booking state machine
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusUpcoming, StatusCancelled},
	StatusUpcoming: {StatusActive, StatusCancelled},
	StatusActive:   {StatusCompleted, StatusCancelled},
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return status, true
	}
	return "", false
}

// IsTerminal returns true for completed and cancelled
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Transition validates a status change. All status writes go through it.
func Transition(from, to BookingStatus) error {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

// Booking is a confirmed or pending desk reservation.
// Date, Time and Duration keep what the booker submitted; the normalized
// fields are nil when the submitted values could not be parsed.
type Booking struct {
	ID          int64
	ListingID   int64
	DeskID      *int64
	DeskLabel   string
	Date        string
	Time        string
	Duration    string
	Status      BookingStatus
	TotalPrice  int64
	CheckInCode string
	UserID      *int64

	// Normalized to the listing timezone
	BookingDate     *time.Time
	StartMinute     *int
	DurationMinutes *int
	Timezone        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the booking still occupies its desk
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// IsOwnedBy returns true if the booking belongs to userID
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}

// HasInterval returns true if date, start and duration were all normalized
func (b *Booking) HasInterval() bool {
	return b.BookingDate != nil && b.StartMinute != nil && b.DurationMinutes != nil
}

// BookingsFilter filter for listing bookings. At least one of ListingID/UserID is expected.
type BookingsFilter struct {
	ListingID  *int64
	UserID     *int64
	DeskID     *int64     // with DeskLabel set, label-only rows (desk_id NULL) also match
	DeskLabel  *string    // case-insensitive
	StartDate  *time.Time // inclusive, booking_date
	EndDate    *time.Time // inclusive, booking_date
	Status     *BookingStatus
	OnlyActive bool
	ForUpdate  bool // lock rows when running inside a transaction
}

// MatchesDesk reports whether the booking belongs to the desk selected by the filter.
// A resolved desk matches by ID, so renames keep earlier bookings attached.
func (f BookingsFilter) MatchesDesk(b *Booking) bool {
	if f.DeskID != nil {
		if b.DeskID != nil {
			return *b.DeskID == *f.DeskID
		}
		return f.DeskLabel != nil && strings.EqualFold(b.DeskLabel, *f.DeskLabel)
	}
	if f.DeskLabel != nil {
		return strings.EqualFold(b.DeskLabel, *f.DeskLabel)
	}
	return true
}
