package models

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// Window окно доступности в формате API
type Window struct {
	ID                int64  `json:"id,omitempty"`
	DayOfWeek         int    `json:"dayOfWeek"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Timezone          string `json:"timezone"`
	IsAllDay          bool   `json:"isAllDay"`
	AppliesToAllDesks *bool  `json:"appliesToAllDesks,omitempty"`
}

// Blackout блокировка даты в формате API
type Blackout struct {
	ID        int64   `json:"id,omitempty"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// Override исключение доступности места в формате API
type Override struct {
	ID        int64   `json:"id,omitempty"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Available *bool   `json:"available,omitempty"` // по умолчанию true
}

// ReplaceWindowsRequest запрос на замену окон объявления
type ReplaceWindowsRequest struct {
	UserID  int64    `json:"-"`
	Windows []Window `json:"windows"`
}

// ReplaceBlackoutsRequest запрос на замену блокировок объявления
type ReplaceBlackoutsRequest struct {
	UserID    int64      `json:"-"`
	Blackouts []Blackout `json:"blackouts"`
}

// ReplaceOverridesRequest запрос на замену исключений места
type ReplaceOverridesRequest struct {
	UserID    int64      `json:"-"`
	Overrides []Override `json:"overrides"`
}

// WindowsResponse ответ со списком окон
type WindowsResponse struct {
	ListingID int64    `json:"listingId"`
	Windows   []Window `json:"windows"`
}

// BlackoutsResponse ответ со списком блокировок
type BlackoutsResponse struct {
	ListingID int64      `json:"listingId"`
	Blackouts []Blackout `json:"blackouts"`
}

// OverridesResponse ответ со списком исключений
type OverridesResponse struct {
	DeskID    int64      `json:"deskId"`
	Overrides []Override `json:"overrides"`
}

// Методы конвертации

// FromDomainWindows конвертирует окна в DTO. Сохраненные значения отдаются как есть.
func FromDomainWindows(listingID int64, windows []domain.AvailabilityWindow) *WindowsResponse {
	resp := &WindowsResponse{ListingID: listingID, Windows: make([]Window, 0, len(windows))}
	for _, w := range windows {
		applies := w.AppliesToAllDesks
		resp.Windows = append(resp.Windows, Window{
			ID:                w.ID,
			DayOfWeek:         w.DayOfWeek,
			StartTime:         w.StartTime.String(),
			EndTime:           w.EndTime.String(),
			Timezone:          w.Timezone,
			IsAllDay:          w.IsAllDay,
			AppliesToAllDesks: &applies,
		})
	}
	return resp
}

// FromDomainBlackouts конвертирует блокировки в DTO
func FromDomainBlackouts(listingID int64, blackouts []domain.BlackoutDate) *BlackoutsResponse {
	resp := &BlackoutsResponse{ListingID: listingID, Blackouts: make([]Blackout, 0, len(blackouts))}
	for _, b := range blackouts {
		item := Blackout{
			ID:     b.ID,
			Date:   b.Date.Format(domain.DateFormat),
			Reason: b.Reason,
		}
		if b.StartTime != nil {
			s := b.StartTime.String()
			item.StartTime = &s
		}
		if b.EndTime != nil {
			e := b.EndTime.String()
			item.EndTime = &e
		}
		resp.Blackouts = append(resp.Blackouts, item)
	}
	return resp
}

// FromDomainOverrides конвертирует исключения в DTO
func FromDomainOverrides(deskID int64, overrides []domain.DeskAvailabilityOverride) *OverridesResponse {
	resp := &OverridesResponse{DeskID: deskID, Overrides: make([]Override, 0, len(overrides))}
	for _, o := range overrides {
		available := o.Available
		item := Override{
			ID:        o.ID,
			Date:      o.Date.Format(domain.DateFormat),
			Available: &available,
		}
		if o.StartTime != nil {
			s := o.StartTime.String()
			item.StartTime = &s
		}
		if o.EndTime != nil {
			e := o.EndTime.String()
			item.EndTime = &e
		}
		resp.Overrides = append(resp.Overrides, item)
	}
	return resp
}
