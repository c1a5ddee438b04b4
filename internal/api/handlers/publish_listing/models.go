package publish_listing

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

// PublishListingRequest HTTP request model. Заменяет все публикуемые поля.
type PublishListingRequest struct {
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
func (r *PublishListingRequest) ToServiceRequest(userID int64) *models.PublishListingRequest {
	return &models.PublishListingRequest{
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
