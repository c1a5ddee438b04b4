package get_availability

import (
	"context"

	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWindows(ctx context.Context, listingID int64) (*models.WindowsResponse, error)
	GetBlackouts(ctx context.Context, listingID int64) (*models.BlackoutsResponse, error)
	GetOverrides(ctx context.Context, deskID int64) (*models.OverridesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
