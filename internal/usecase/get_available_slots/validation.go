package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ListingID <= 0 {
		return fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DeskLabel) == "" {
		return fmt.Errorf("%w: deskLabel is required", ErrInvalidInput)
	}

	return nil
}

// parseDuration разбирает длительность слота; пустое значение означает шаг сетки
func parseDuration(raw string, step int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return step, nil
	}
	minutes, ok := availability.ParseDuration(raw)
	if !ok || minutes > 24*60 {
		return 0, fmt.Errorf("%w: invalid duration %q", ErrInvalidInput, raw)
	}
	return minutes, nil
}

// parseDate разбирает дату строго: на стороне чтения неразобранная дата - ошибка
func parseDate(raw string, today time.Time) (time.Time, error) {
	date, ok := availability.ParseDate(raw, today)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}
