package models

import (
	"errors"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на смену статуса бронирования хостом
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetListingBookingsRequest запрос на получение бронирований объявления
type GetListingBookingsRequest struct {
	UserID     int64      `json:"userId"`
	ListingID  int64      `json:"listingId"`
	DeskLabel  *string    `json:"deskLabel,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Status     *string    `json:"status,omitempty"`
	OnlyActive bool       `json:"onlyActive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetListingBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ListingID:  &r.ListingID,
		DeskLabel:  r.DeskLabel,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		OnlyActive: r.OnlyActive,
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return filter, ErrInvalidDate
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	ListingID   int64  `json:"listingId"`
	DeskID      *int64 `json:"deskId,omitempty"`
	DeskLabel   string `json:"deskLabel"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	TotalPrice  int64  `json:"totalPrice"`
	CheckInCode string `json:"checkInCode"`
	UserID      *int64 `json:"userId,omitempty"`

	// Нормализовано к часовому поясу объявления; отсутствует, если запрос не распознан
	BookingDate     *string `json:"bookingDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Timezone        string  `json:"timezone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		DeskID:          b.DeskID,
		DeskLabel:       b.DeskLabel,
		Date:            b.Date,
		Time:            b.Time,
		Duration:        b.Duration,
		Status:          string(b.Status),
		TotalPrice:      b.TotalPrice,
		CheckInCode:     b.CheckInCode,
		UserID:          b.UserID,
		DurationMinutes: b.DurationMinutes,
		Timezone:        b.Timezone,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.BookingDate != nil {
		date := b.BookingDate.Format(domain.DateFormat)
		resp.BookingDate = &date
	}
	if b.StartMinute != nil {
		start := formatMinute(*b.StartMinute)
		resp.StartTime = &start
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatMinute(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format(domain.TimeFormat)
}
