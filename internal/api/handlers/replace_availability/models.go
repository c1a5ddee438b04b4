package replace_availability

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
)

// WindowsRequest HTTP request model. Полностью заменяет окна объявления.
type WindowsRequest struct {
	Windows []models.Window `json:"windows"`
}

// BlackoutsRequest HTTP request model
type BlackoutsRequest struct {
	Blackouts []models.Blackout `json:"blackouts"`
}

// OverridesRequest HTTP request model
type OverridesRequest struct {
	Overrides []models.Override `json:"overrides"`
}

func (r *WindowsRequest) ToServiceRequest(userID int64) *models.ReplaceWindowsRequest {
	return &models.ReplaceWindowsRequest{UserID: userID, Windows: r.Windows}
}

func (r *BlackoutsRequest) ToServiceRequest(userID int64) *models.ReplaceBlackoutsRequest {
	return &models.ReplaceBlackoutsRequest{UserID: userID, Blackouts: r.Blackouts}
}

func (r *OverridesRequest) ToServiceRequest(userID int64) *models.ReplaceOverridesRequest {
	return &models.ReplaceOverridesRequest{UserID: userID, Overrides: r.Overrides}
}
