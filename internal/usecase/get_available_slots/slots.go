package get_available_slots

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/admission"
	"github.com/m04kA/FlexDesk-BookingService/internal/availability"
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/pkg/types"
)

const minutesPerDay = 24 * 60

// generateStarts генерирует начала слотов с шагом step так, чтобы слот
// длительностью duration заканчивался не позже полуночи.
// Для сегодняшней даты прошедшие начала отбрасываются, для прошедшей даты слотов нет.
func generateStarts(date time.Time, step, duration int, localNow time.Time) []int {
	today := availability.CivilDate(localNow)
	if date.Before(today) {
		return []int{}
	}

	earliest := 0
	if availability.SameDate(date, today) {
		earliest = localNow.Hour()*60 + localNow.Minute()
	}

	starts := make([]int, 0, minutesPerDay/step)
	for start := 0; start+duration <= minutesPerDay; start += step {
		if start < earliest {
			continue
		}
		starts = append(starts, start)
	}
	return starts
}

// markSlots оставляет слоты внутри окон доступности и помечает каждый
// свободным или занятым с причиной отказа
func markSlots(
	engine *admission.Engine,
	snapshot *admission.Snapshot,
	date time.Time,
	starts []int,
	duration int,
	listingLoc *time.Location,
) []domain.DeskSlot {
	slots := make([]domain.DeskSlot, 0, len(starts))

	for _, start := range starts {
		req := availability.Request{
			Date:            date,
			StartMinute:     start,
			DurationMinutes: duration,
			Location:        listingLoc,
		}

		reason, ok := engine.CheckSlot(snapshot, req)
		if reason == domain.ReasonOutsideWindow {
			continue
		}

		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			continue
		}

		slots = append(slots, domain.DeskSlot{
			StartTime:       startTime,
			DurationMinutes: duration,
			Available:       ok,
			Reason:          reason,
		})
	}

	return slots
}
