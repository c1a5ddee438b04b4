package create_booking

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	createBooking "github.com/m04kA/FlexDesk-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ListingID int64  `json:"listingId"`
	DeskLabel string `json:"deskLabel"`
	Date      string `json:"date"`     // "2026-03-04" или "today"
	Time      string `json:"time"`     // "10:00", "2:30 pm"
	Duration  string `json:"duration"` // "2h", "1h30m"
	Price     int64  `json:"price"`
	Timezone  string `json:"timezone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ListingID       int64   `json:"listingId"`
	DeskLabel       string  `json:"deskLabel"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Duration        string  `json:"duration"`
	Status          string  `json:"status"`
	TotalPrice      int64   `json:"totalPrice"`
	CheckInCode     string  `json:"checkInCode"`
	UserID          *int64  `json:"userId,omitempty"`
	BookingDate     *string `json:"bookingDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Timezone        string  `json:"timezone"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата, время и длительность передаются как есть: их разбор - часть допуска.
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64, email string) *createBooking.Request {
	return &createBooking.Request{
		ListingID: r.ListingID,
		DeskLabel: r.DeskLabel,
		Date:      r.Date,
		Time:      r.Time,
		Duration:  r.Duration,
		Price:     r.Price,
		Timezone:  r.Timezone,
		UserID:    userID,
		Email:     email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		ListingID:       resp.ListingID,
		DeskLabel:       resp.DeskLabel,
		Date:            resp.Date,
		Time:            resp.Time,
		Duration:        resp.Duration,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		CheckInCode:     resp.CheckInCode,
		UserID:          resp.UserID,
		DurationMinutes: resp.DurationMinutes,
		Timezone:        resp.Timezone,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.BookingDate != nil {
		date := resp.BookingDate.Format(domain.DateFormat)
		out.BookingDate = &date
	}
	if resp.StartMinute != nil {
		start := fmtMinute(*resp.StartMinute)
		out.StartTime = &start
	}

	return out
}

func fmtMinute(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format(domain.TimeFormat)
}
