package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/internal/infra/lock"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/events"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.Profile, error)
}

// Locker интерфейс резерва места на время допуска
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error)
}

// EventPublisher интерфейс издателя событий
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreated) error
}

// DecisionObserver учитывает решения о допуске в метриках
type DecisionObserver interface {
	ObserveAdmission(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
