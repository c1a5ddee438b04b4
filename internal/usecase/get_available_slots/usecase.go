package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/admission"
	"github.com/m04kA/FlexDesk-BookingService/internal/availability"
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
)

// UseCase use case для получения слотов места на дату
type UseCase struct {
	bookingRepo      BookingRepository
	listingRepo      ListingRepository
	availabilityRepo AvailabilityRepository
	engine           *admission.Engine
	stepMinutes      int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	availabilityRepo AvailabilityRepository,
	engine *admission.Engine,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinute
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		listingRepo:      listingRepo,
		availabilityRepo: availabilityRepo,
		engine:           engine,
		stepMinutes:      stepMinutes,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: listing=%d, desk=%q, date=%q, duration=%q",
		req.ListingID, req.DeskLabel, req.Date, req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	deskLabel := strings.TrimSpace(req.DeskLabel)

	duration, err := parseDuration(req.Duration, uc.stepMinutes)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Объявление
	listing, err := uc.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			uc.logger.Warn("GetAvailableSlots: listing id=%d not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	// 3. Дата в часовом поясе объявления
	listingLoc := availability.LoadLocation(listing.Timezone, nil)
	localNow := uc.timeProvider.Now().In(listingLoc)

	date, err := parseDate(req.Date, localNow)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 4. Данные доступности
	snapshot, err := uc.loadSnapshot(ctx, listing, deskLabel, date)
	if err != nil {
		return nil, err
	}

	// 5. Сетка слотов
	starts := generateStarts(date, uc.stepMinutes, duration, localNow)
	slots := markSlots(uc.engine, snapshot, date, starts, duration, listingLoc)

	uc.logger.Info("GetAvailableSlots: generated %d slots for listing=%d, desk=%q, date=%s",
		len(slots), req.ListingID, deskLabel, date.Format(domain.DateFormat))

	return &Response{
		ListingID: listing.ID,
		DeskLabel: deskLabel,
		Date:      date,
		Timezone:  listingLoc.String(),
		Slots:     slots,
	}, nil
}

func (uc *UseCase) loadSnapshot(ctx context.Context, listing *domain.Listing, deskLabel string, date time.Time) (*admission.Snapshot, error) {
	snapshot := &admission.Snapshot{Listing: listing}

	var err error
	snapshot.Windows, err = uc.availabilityRepo.GetWindows(ctx, listing.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get windows: %v", ErrInternal, err)
	}

	snapshot.Blackouts, err = uc.availabilityRepo.GetBlackouts(ctx, listing.ID, &date, &date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	desk, err := uc.listingRepo.GetDeskByLabel(ctx, listing.ID, deskLabel)
	switch {
	case err == nil:
		snapshot.Overrides, err = uc.availabilityRepo.GetOverrides(ctx, desk.ID, &date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get overrides: %v", err)
			return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
		}
	case !errors.Is(err, listingRepo.ErrDeskNotFound):
		uc.logger.Error("GetAvailableSlots: failed to get desk %q: %v", deskLabel, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	from := date.AddDate(0, 0, -1)
	to := date.AddDate(0, 0, 1)
	filter := domain.BookingsFilter{
		ListingID:  &listing.ID,
		DeskLabel:  &deskLabel,
		StartDate:  &from,
		EndDate:    &to,
		OnlyActive: true,
	}
	if desk != nil {
		filter.DeskID = &desk.ID
	}
	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	snapshot.Bookings = make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		snapshot.Bookings = append(snapshot.Bookings, *b)
	}

	return snapshot, nil
}
