package get_available_slots

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/FlexDesk-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	ListingID int64           `json:"listingId"`
	DeskLabel string          `json:"deskLabel"`
	Timezone  string          `json:"timezone"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
	Reason          string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
			Reason:          string(slot.Reason),
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ListingID: resp.ListingID,
		DeskLabel: resp.DeskLabel,
		Timezone:  resp.Timezone,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(listingID int64, deskLabel, date, duration string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ListingID: listingID,
		DeskLabel: deskLabel,
		Date:      date,
		Duration:  duration,
	}
}
