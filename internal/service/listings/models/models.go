package models

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// Request модели

// ListingInput публикуемые поля объявления
type ListingInput struct {
	Title            string   `json:"title"`
	Timezone         string   `json:"timezone"`
	PricePerHour     int64    `json:"pricePerHour"`
	PaidEnabled      bool     `json:"paidEnabled"`
	RequiresApproval bool     `json:"requiresApproval"`
	RequiresID       bool     `json:"requiresId"`
	Mode             string   `json:"mode"`
	AllowedEmails    []string `json:"allowedEmails"`
}

// CreateListingRequest запрос на создание объявления
type CreateListingRequest struct {
	UserID int64 `json:"-"`
	ListingInput
}

// PublishListingRequest запрос на обновление объявления хостом
type PublishListingRequest struct {
	UserID int64 `json:"-"`
	ListingInput
}

// DeskRequest запрос на создание или переименование места
type DeskRequest struct {
	UserID int64  `json:"-"`
	Label  string `json:"label"`
}

// Response модели

// DeskResponse ответ с данными места
type DeskResponse struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listingId"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListingResponse ответ с данными объявления
type ListingResponse struct {
	ID               int64          `json:"id"`
	OwnerID          int64          `json:"ownerId"`
	Title            string         `json:"title"`
	Timezone         string         `json:"timezone"`
	PricePerHour     int64          `json:"pricePerHour"`
	PaidEnabled      bool           `json:"paidEnabled"`
	RequiresApproval bool           `json:"requiresApproval"`
	RequiresID       bool           `json:"requiresId"`
	Mode             string         `json:"mode"`
	AllowedEmails    []string       `json:"allowedEmails"`
	Desks            []DeskResponse `json:"desks"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Методы конвертации

// FromDomainDesk конвертирует domain модель места в DTO
func FromDomainDesk(d *domain.Desk) DeskResponse {
	return DeskResponse{
		ID:        d.ID,
		ListingID: d.ListingID,
		Label:     d.Label,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// FromDomainListing конвертирует domain модель объявления в DTO
func FromDomainListing(l *domain.Listing, desks []*domain.Desk) *ListingResponse {
	resp := &ListingResponse{
		ID:               l.ID,
		OwnerID:          l.OwnerID,
		Title:            l.Title,
		Timezone:         l.Timezone,
		PricePerHour:     l.PricePerHour,
		PaidEnabled:      l.PaidEnabled,
		RequiresApproval: l.RequiresApproval,
		RequiresID:       l.RequiresID,
		Mode:             string(l.Mode),
		AllowedEmails:    l.AllowedEmails,
		Desks:            make([]DeskResponse, 0, len(desks)),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
	if resp.AllowedEmails == nil {
		resp.AllowedEmails = []string{}
	}
	for _, d := range desks {
		resp.Desks = append(resp.Desks, FromDomainDesk(d))
	}
	return resp
}
