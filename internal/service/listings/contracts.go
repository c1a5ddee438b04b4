package listings

import (
	"context"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// ListingRepository интерфейс репозитория объявлений и мест
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	CreateDesk(ctx context.Context, desk *domain.Desk) (*domain.Desk, error)
	RenameDesk(ctx context.Context, deskID int64, label string) (*domain.Desk, error)
	GetDeskByID(ctx context.Context, deskID int64) (*domain.Desk, error)
	ListDesks(ctx context.Context, listingID int64) ([]*domain.Desk, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
