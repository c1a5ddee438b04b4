package availability

import (
	"context"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetWindows(ctx context.Context, listingID int64) ([]domain.AvailabilityWindow, error)
	ReplaceWindows(ctx context.Context, listingID int64, windows []domain.AvailabilityWindow) error
	GetBlackouts(ctx context.Context, listingID int64, from, to *time.Time) ([]domain.BlackoutDate, error)
	ReplaceBlackouts(ctx context.Context, listingID int64, blackouts []domain.BlackoutDate) error
	GetOverrides(ctx context.Context, deskID int64, date *time.Time) ([]domain.DeskAvailabilityOverride, error)
	ReplaceOverrides(ctx context.Context, deskID int64, overrides []domain.DeskAvailabilityOverride) error
}

// ListingRepository интерфейс репозитория объявлений
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetDeskByID(ctx context.Context, deskID int64) (*domain.Desk, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
