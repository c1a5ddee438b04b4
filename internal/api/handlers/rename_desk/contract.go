package rename_desk

import (
	"context"

	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

type ListingService interface {
	RenameDesk(ctx context.Context, deskID int64, req *models.DeskRequest) (*models.DeskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
