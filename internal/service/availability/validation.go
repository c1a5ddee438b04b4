package availability

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
	"github.com/m04kA/FlexDesk-BookingService/pkg/types"
)

func toDomainWindows(listingID int64, in []models.Window) ([]domain.AvailabilityWindow, error) {
	if len(in) > domain.MaxWindowsPerListing {
		return nil, fmt.Errorf("%w: at most %d windows", ErrInvalidInput, domain.MaxWindowsPerListing)
	}

	windows := make([]domain.AvailabilityWindow, 0, len(in))
	for i, w := range in {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: windows[%d]: dayOfWeek must be 0..6", ErrInvalidInput, i)
		}

		timezone := strings.TrimSpace(w.Timezone)
		if timezone != "" {
			if _, err := time.LoadLocation(timezone); err != nil {
				return nil, fmt.Errorf("%w: windows[%d]: unknown timezone %q", ErrInvalidInput, i, timezone)
			}
		}

		window := domain.AvailabilityWindow{
			ListingID:         listingID,
			DayOfWeek:         w.DayOfWeek,
			Timezone:          timezone,
			IsAllDay:          w.IsAllDay,
			AppliesToAllDesks: w.AppliesToAllDesks == nil || *w.AppliesToAllDesks,
		}

		// Для окна на весь день время не обязательно
		if w.IsAllDay && w.StartTime == "" && w.EndTime == "" {
			windows = append(windows, window)
			continue
		}

		start, end, err := parseRange(w.StartTime, w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: windows[%d]: %v", ErrInvalidInput, i, err)
		}
		window.StartTime = start
		window.EndTime = end

		windows = append(windows, window)
	}

	return windows, nil
}

func toDomainBlackouts(listingID int64, in []models.Blackout) ([]domain.BlackoutDate, error) {
	if len(in) > domain.MaxBlackoutsPerSave {
		return nil, fmt.Errorf("%w: at most %d blackouts", ErrInvalidInput, domain.MaxBlackoutsPerSave)
	}

	blackouts := make([]domain.BlackoutDate, 0, len(in))
	for i, b := range in {
		date, err := parseDate(b.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: blackouts[%d]: %v", ErrInvalidInput, i, err)
		}

		blackout := domain.BlackoutDate{ListingID: listingID, Date: date}

		hasStart := b.StartTime != nil && *b.StartTime != ""
		hasEnd := b.EndTime != nil && *b.EndTime != ""
		switch {
		case hasStart && hasEnd:
			start, end, err := parseRange(*b.StartTime, *b.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: blackouts[%d]: %v", ErrInvalidInput, i, err)
			}
			blackout.StartTime = &start
			blackout.EndTime = &end
		case hasStart || hasEnd:
			return nil, fmt.Errorf("%w: blackouts[%d]: startTime and endTime must be set together", ErrInvalidInput, i)
		}

		if b.Reason != nil {
			reason := strings.TrimSpace(*b.Reason)
			if utf8.RuneCountInString(reason) > domain.MaxReasonLength {
				return nil, fmt.Errorf("%w: blackouts[%d]: reason is longer than %d characters", ErrInvalidInput, i, domain.MaxReasonLength)
			}
			if reason != "" {
				blackout.Reason = &reason
			}
		}

		blackouts = append(blackouts, blackout)
	}

	return blackouts, nil
}

func toDomainOverrides(deskID int64, in []models.Override) ([]domain.DeskAvailabilityOverride, error) {
	if len(in) > domain.MaxOverridesPerSave {
		return nil, fmt.Errorf("%w: at most %d overrides", ErrInvalidInput, domain.MaxOverridesPerSave)
	}

	seen := make(map[string]struct{}, len(in))
	overrides := make([]domain.DeskAvailabilityOverride, 0, len(in))
	for i, o := range in {
		date, err := parseDate(o.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: overrides[%d]: %v", ErrInvalidInput, i, err)
		}

		// Одна строка на (место, дата)
		key := date.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: overrides[%d]: duplicate date %s", ErrInvalidInput, i, key)
		}
		seen[key] = struct{}{}

		override := domain.DeskAvailabilityOverride{
			DeskID:    deskID,
			Date:      date,
			Available: o.Available == nil || *o.Available,
		}

		if o.StartTime != nil && *o.StartTime != "" {
			start, err := types.NewTimeStringFromString(*o.StartTime)
			if err != nil {
				return nil, fmt.Errorf("%w: overrides[%d]: startTime: %v", ErrInvalidInput, i, err)
			}
			override.StartTime = &start
		}
		if o.EndTime != nil && *o.EndTime != "" {
			end, err := types.NewTimeStringFromString(*o.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: overrides[%d]: endTime: %v", ErrInvalidInput, i, err)
			}
			override.EndTime = &end
		}

		overrides = append(overrides, override)
	}

	return overrides, nil
}

// parseRange проверяет "HH:MM" границы и что начало строго раньше конца
func parseRange(startRaw, endRaw string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(startRaw)
	if err != nil {
		return "", "", fmt.Errorf("startTime: %v", err)
	}
	end, err := types.NewTimeStringFromString(endRaw)
	if err != nil {
		return "", "", fmt.Errorf("endTime: %v", err)
	}
	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("startTime must be before endTime")
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return date, nil
}
