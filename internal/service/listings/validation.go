package listings

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

// toDomainListing валидирует входные данные и собирает domain модель
func toDomainListing(ownerID int64, in models.ListingInput) (*domain.Listing, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	timezone := strings.TrimSpace(in.Timezone)
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, timezone)
	}

	if in.PricePerHour < 0 {
		return nil, fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}

	mode := domain.ModeOpen
	if in.Mode != "" {
		mode = domain.ListingMode(strings.ToUpper(in.Mode))
		if !mode.IsValid() {
			return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, in.Mode)
		}
	}

	emails, err := normalizeEmails(in.AllowedEmails)
	if err != nil {
		return nil, err
	}

	return &domain.Listing{
		OwnerID:          ownerID,
		Title:            title,
		Timezone:         timezone,
		PricePerHour:     in.PricePerHour,
		PaidEnabled:      in.PaidEnabled,
		RequiresApproval: in.RequiresApproval,
		RequiresID:       in.RequiresID,
		Mode:             mode,
		AllowedEmails:    emails,
	}, nil
}

// normalizeEmails обрезает пробелы и убирает дубликаты без учета регистра.
// Исходное написание сохраняется: сравнение при допуске тоже регистронезависимое.
func normalizeEmails(raw []string) ([]string, error) {
	if len(raw) > domain.MaxAllowedEmails {
		return nil, fmt.Errorf("%w: at most %d allowed emails", ErrInvalidInput, domain.MaxAllowedEmails)
	}

	seen := make(map[string]struct{}, len(raw))
	emails := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "@") {
			return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, e)
		}
		key := strings.ToLower(e)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		emails = append(emails, e)
	}
	return emails, nil
}

func validateDeskLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(label) > domain.MaxDeskLabelLength {
		return "", fmt.Errorf("%w: label is longer than %d characters", ErrInvalidInput, domain.MaxDeskLabelLength)
	}
	return label, nil
}
