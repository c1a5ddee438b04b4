package get_booking

import (
	"github.com/m04kA/FlexDesk-BookingService/internal/service/bookings/models"
)

const (
	roleBooker = "booker"
	roleHost   = "host"
)

// BookingView бронирование с ролью запросившего пользователя
type BookingView struct {
	models.BookingResponse
	ViewerRole string `json:"viewerRole"`
}

// FromServiceResponse определяет роль: сервис отдает бронирование только автору или хосту
func FromServiceResponse(b *models.BookingResponse, userID int64) *BookingView {
	role := roleHost
	if b.UserID != nil && *b.UserID == userID {
		role = roleBooker
	}
	return &BookingView{BookingResponse: *b, ViewerRole: role}
}
