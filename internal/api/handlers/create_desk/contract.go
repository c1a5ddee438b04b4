package create_desk

import (
	"context"

	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

type ListingService interface {
	CreateDesk(ctx context.Context, listingID int64, req *models.DeskRequest) (*models.DeskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
