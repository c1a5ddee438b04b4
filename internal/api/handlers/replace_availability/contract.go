package replace_availability

import (
	"context"

	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ReplaceWindows(ctx context.Context, listingID int64, req *models.ReplaceWindowsRequest) (*models.WindowsResponse, error)
	ReplaceBlackouts(ctx context.Context, listingID int64, req *models.ReplaceBlackoutsRequest) (*models.BlackoutsResponse, error)
	ReplaceOverrides(ctx context.Context, deskID int64, req *models.ReplaceOverridesRequest) (*models.OverridesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
