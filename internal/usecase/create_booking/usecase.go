package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/admission"
	"github.com/m04kA/FlexDesk-BookingService/internal/availability"
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/internal/infra/lock"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/events"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/userservice"
)

// UseCase use case для попытки бронирования места
type UseCase struct {
	bookingRepo      BookingRepository
	listingRepo      ListingRepository
	availabilityRepo AvailabilityRepository
	userClient       UserServiceClient
	locker           Locker
	publisher        EventPublisher
	observer         DecisionObserver
	engine           *admission.Engine
	txManager        TransactionManager
	holdTTL          time.Duration
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	availabilityRepo AvailabilityRepository,
	userClient UserServiceClient,
	locker Locker,
	publisher EventPublisher,
	observer DecisionObserver,
	engine *admission.Engine,
	txManager TransactionManager,
	holdTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		listingRepo:      listingRepo,
		availabilityRepo: availabilityRepo,
		userClient:       userClient,
		locker:           locker,
		publisher:        publisher,
		observer:         observer,
		engine:           engine,
		txManager:        txManager,
		holdTTL:          holdTTL,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет попытку бронирования.
// Место на дату резервируется на время решения, чтение занятости и запись идут
// в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: listing=%d, desk=%q, date=%q, time=%q, duration=%q",
		req.ListingID, req.DeskLabel, req.Date, req.Time, req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	req.DeskLabel = strings.TrimSpace(req.DeskLabel)

	now := uc.timeProvider.Now()

	// 2. Заявитель: токен + профиль из UserService
	requester := uc.resolveRequester(ctx, req)

	// 3. Объявление
	listing, err := uc.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil && !errors.Is(err, listingRepo.ErrListingNotFound) {
		uc.logger.Error("CreateBooking: failed to get listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	admissionReq := admission.Request{
		DeskLabel: req.DeskLabel,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Price:     req.Price,
		Timezone:  req.Timezone,
		Requester: requester,
	}

	// 4. Проверки объявления и заявителя, до резерва места
	if reason, ok := uc.engine.CheckPolicy(listing, requester); !ok {
		return nil, uc.reject(req, reason)
	}

	// 5. Резерв места на дату
	local, parsed := admission.Normalize(listing, admissionReq, now)
	if parsed {
		release, err := uc.locker.Acquire(ctx, lock.HoldKey(listing.ID, req.DeskLabel, local.Date), uc.holdTTL)
		if err != nil {
			if errors.Is(err, lock.ErrNotAcquired) {
				uc.logger.Warn("CreateBooking: desk=%q on %s is held by another request",
					req.DeskLabel, local.Date.Format(domain.DateFormat))
				uc.observer.ObserveAdmission("DESK_BUSY")
				return nil, ErrDeskBusy
			}
			uc.logger.Error("CreateBooking: failed to acquire hold: %v", err)
			return nil, fmt.Errorf("%w: failed to acquire hold: %v", ErrInternal, err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				uc.logger.Warn("CreateBooking: failed to release hold: %v", err)
			}
		}()
	}

	var (
		created  *domain.Booking
		decision *admission.Decision
	)

	// 6. Решение и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		snapshot, desk, err := uc.loadSnapshot(txCtx, listing, req.DeskLabel, local, parsed)
		if err != nil {
			return err
		}

		decision, err = uc.engine.Decide(&admission.Input{
			Snapshot: *snapshot,
			Request:  admissionReq,
			Now:      now,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: decision failed: %v", err)
			return fmt.Errorf("%w: decision failed: %v", ErrInternal, err)
		}
		if !decision.Admitted() {
			return nil
		}

		booking := toDomainBooking(decision.Draft)
		if desk != nil {
			booking.DeskID = &desk.ID
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !decision.Admitted() {
		return nil, uc.reject(req, decision.Reason)
	}

	uc.observer.ObserveAdmission("")
	uc.logger.Info("CreateBooking: booking id=%d created, status=%s, code=%s",
		created.ID, created.Status, created.CheckInCode)

	// 7. Событие после фиксации, ошибки не влияют на ответ
	event := events.BookingCreated{
		BookingID:   created.ID,
		ListingID:   created.ListingID,
		DeskLabel:   created.DeskLabel,
		UserID:      created.UserID,
		Date:        created.Date,
		Time:        created.Time,
		Duration:    created.Duration,
		Status:      string(created.Status),
		TotalPrice:  created.TotalPrice,
		CheckInCode: created.CheckInCode,
		CreatedAt:   created.CreatedAt,
	}
	if err := uc.publisher.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", created.ID, err)
	}

	return toResponse(created), nil
}

// resolveRequester строит заявителя. Если профиль недоступен, заявитель
// остается без верификации и соглашений, только с данными токена.
func (uc *UseCase) resolveRequester(ctx context.Context, req *Request) *domain.Requester {
	requester := &domain.Requester{
		UserID: req.UserID,
		Email:  strings.TrimSpace(req.Email),
	}
	if req.UserID == nil {
		return requester
	}

	profile, err := uc.userClient.GetProfileWithGracefulDegradation(ctx, *req.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrServiceDegraded) || errors.Is(err, userservice.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: using token-only requester for user=%d: %v", *req.UserID, err)
		} else {
			uc.logger.Error("CreateBooking: failed to get profile for user=%d: %v", *req.UserID, err)
		}
		return requester
	}

	if profile.Email != "" {
		requester.Email = profile.Email
	}
	requester.IDVerified = profile.IDVerified
	requester.AcceptedTermsAt = profile.AcceptedTermsAt
	requester.AcceptedLiabilityAt = profile.AcceptedLiabilityAt
	return requester
}

// loadSnapshot читает данные доступности. Для неразобранного запроса
// проверки доступности не выполняются, поэтому читается только объявление.
func (uc *UseCase) loadSnapshot(
	ctx context.Context,
	listing *domain.Listing,
	deskLabel string,
	local availability.Interval,
	parsed bool,
) (*admission.Snapshot, *domain.Desk, error) {
	snapshot := &admission.Snapshot{Listing: listing}

	desk, err := uc.listingRepo.GetDeskByLabel(ctx, listing.ID, deskLabel)
	if err != nil {
		if !errors.Is(err, listingRepo.ErrDeskNotFound) {
			uc.logger.Error("CreateBooking: failed to get desk %q: %v", deskLabel, err)
			return nil, nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
		}
	}

	if !parsed {
		return snapshot, desk, nil
	}

	snapshot.Windows, err = uc.availabilityRepo.GetWindows(ctx, listing.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get windows: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get windows: %v", ErrInternal, err)
	}

	date := local.Date
	snapshot.Blackouts, err = uc.availabilityRepo.GetBlackouts(ctx, listing.ID, &date, &date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blackouts: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	if desk != nil {
		snapshot.Overrides, err = uc.availabilityRepo.GetOverrides(ctx, desk.ID, &date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overrides: %v", err)
			return nil, nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
		}
	}

	// Соседние дни нужны для бронирований, переходящих через полночь
	from := date.AddDate(0, 0, -1)
	to := date.AddDate(0, 0, 1)
	filter := domain.BookingsFilter{
		ListingID:  &listing.ID,
		DeskLabel:  &deskLabel,
		StartDate:  &from,
		EndDate:    &to,
		OnlyActive: true,
		ForUpdate:  true,
	}
	if desk != nil {
		filter.DeskID = &desk.ID
	}
	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	snapshot.Bookings = make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		snapshot.Bookings = append(snapshot.Bookings, *b)
	}

	return snapshot, desk, nil
}

func (uc *UseCase) reject(req *Request, reason domain.RejectionReason) error {
	uc.logger.Warn("CreateBooking: rejected listing=%d, desk=%q: %s", req.ListingID, req.DeskLabel, reason)
	uc.observer.ObserveAdmission(string(reason))
	return &RejectionError{Reason: reason}
}

func toDomainBooking(d *admission.Draft) *domain.Booking {
	return &domain.Booking{
		ListingID:       d.ListingID,
		DeskLabel:       d.DeskLabel,
		Date:            d.Date,
		Time:            d.Time,
		Duration:        d.Duration,
		Status:          d.Status,
		TotalPrice:      d.TotalPrice,
		CheckInCode:     d.CheckInCode,
		UserID:          d.UserID,
		BookingDate:     d.BookingDate,
		StartMinute:     d.StartMinute,
		DurationMinutes: d.DurationMinutes,
		Timezone:        d.Timezone,
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		ListingID:       b.ListingID,
		DeskLabel:       b.DeskLabel,
		Date:            b.Date,
		Time:            b.Time,
		Duration:        b.Duration,
		Status:          string(b.Status),
		TotalPrice:      b.TotalPrice,
		CheckInCode:     b.CheckInCode,
		UserID:          b.UserID,
		BookingDate:     b.BookingDate,
		StartMinute:     b.StartMinute,
		DurationMinutes: b.DurationMinutes,
		Timezone:        b.Timezone,
		CreatedAt:       b.CreatedAt,
	}
}
