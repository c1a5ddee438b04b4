package create_desk

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

// DeskRequest HTTP request model
type DeskRequest struct {
	Label string `json:"label"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *DeskRequest) ToServiceRequest(userID int64) *models.DeskRequest {
	return &models.DeskRequest{
		UserID: userID,
		Label:  r.Label,
	}
}
