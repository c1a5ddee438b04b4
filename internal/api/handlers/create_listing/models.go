package create_listing

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

// CreateListingRequest HTTP request model
type CreateListingRequest struct {
	Title            string   `json:"title"`
	Timezone         string   `json:"timezone"`
	PricePerHour     int64    `json:"pricePerHour"`
	PaidEnabled      bool     `json:"paidEnabled"`
	RequiresApproval bool     `json:"requiresApproval"`
	RequiresID       bool     `json:"requiresId"`
	Mode             string   `json:"mode"`
	AllowedEmails    []string `json:"allowedEmails"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateListingRequest) ToServiceRequest(userID int64) *models.CreateListingRequest {
	return &models.CreateListingRequest{
		UserID: userID,
		ListingInput: models.ListingInput{
			Title:            r.Title,
			Timezone:         r.Timezone,
			PricePerHour:     r.PricePerHour,
			PaidEnabled:      r.PaidEnabled,
			RequiresApproval: r.RequiresApproval,
			RequiresID:       r.RequiresID,
			Mode:             r.Mode,
			AllowedEmails:    r.AllowedEmails,
		},
	}
}
