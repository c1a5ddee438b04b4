package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ListingRepository интерфейс репозитория объявлений и мест
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetDeskByLabel(ctx context.Context, listingID int64, label string) (*domain.Desk, error)
}

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetWindows(ctx context.Context, listingID int64) ([]domain.AvailabilityWindow, error)
	GetBlackouts(ctx context.Context, listingID int64, from, to *time.Time) ([]domain.BlackoutDate, error)
	GetOverrides(ctx context.Context, deskID int64, date *time.Time) ([]domain.DeskAvailabilityOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
