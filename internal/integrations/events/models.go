package events

import "time"

// Имена очередей
const (
	QueueBookingCreated       = "booking.created"
	QueueBookingStatusChanged = "booking.status_changed"
)

// BookingCreated публикуется после фиксации нового бронирования
type BookingCreated struct {
	BookingID   int64     `json:"bookingId"`
	ListingID   int64     `json:"listingId"`
	DeskLabel   string    `json:"deskLabel"`
	UserID      *int64    `json:"userId,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    string    `json:"duration"`
	Status      string    `json:"status"`
	TotalPrice  int64     `json:"totalPrice"`
	CheckInCode string    `json:"checkInCode"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingStatusChanged публикуется после смены статуса бронирования
type BookingStatusChanged struct {
	BookingID int64     `json:"bookingId"`
	ListingID int64     `json:"listingId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedBy int64     `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}
