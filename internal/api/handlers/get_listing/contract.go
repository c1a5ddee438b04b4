package get_listing

import (
	"context"

	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

type ListingService interface {
	GetByID(ctx context.Context, id int64) (*models.ListingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
