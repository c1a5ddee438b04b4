package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// validateRequest проверяет форму запроса. Значения даты, времени и длительности
// здесь не разбираются: это часть решения о допуске.
func validateRequest(req *Request) error {
	if req.ListingID <= 0 {
		return fmt.Errorf("%w: listingId must be positive", ErrInvalidInput)
	}

	label := strings.TrimSpace(req.DeskLabel)
	if label == "" {
		return fmt.Errorf("%w: deskLabel is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(label) > domain.MaxDeskLabelLength {
		return fmt.Errorf("%w: deskLabel is longer than %d characters", ErrInvalidInput, domain.MaxDeskLabelLength)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Duration) == "" {
		return fmt.Errorf("%w: duration is required", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return nil
}
