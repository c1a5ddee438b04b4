package create_booking

import (
	"errors"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

var (
	// ErrRejected возвращается, когда бронирование не прошло проверки допуска.
	// Конкретная причина доступна через RejectionError.
	ErrRejected = errors.New("create_booking: booking rejected")

	// ErrDeskBusy возвращается, когда место на эту дату сейчас бронирует другой запрос
	ErrDeskBusy = errors.New("create_booking: desk is being booked by another request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionError бизнес-отказ с кодом причины
type RejectionError struct {
	Reason domain.RejectionReason
}

func (e *RejectionError) Error() string {
	return ErrRejected.Error() + ": " + string(e.Reason)
}

// Is позволяет проверять отказ через errors.Is(err, ErrRejected)
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// ReasonOf извлекает причину отказа из ошибки
func ReasonOf(err error) (domain.RejectionReason, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Reason, true
	}
	return "", false
}
