package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/events"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	listingRepo ListingRepository
	publisher   EventPublisher
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно автору бронирования и хосту объявления
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !booking.IsOwnedBy(userID) {
		if err := s.checkHostAccess(ctx, "GetByID", booking.ListingID, userID); err != nil {
			return nil, err
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingsFilter{UserID: &req.UserID}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetListingBookings получает бронирования объявления, сначала новые
// Доступно только хосту объявления
func (s *Service) GetListingBookings(ctx context.Context, req *models.GetListingBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetListingBookings: listing=%d, user=%d", req.ListingID, req.UserID)

	if err := s.checkHostAccess(ctx, "GetListingBookings", req.ListingID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetListingBookings: invalid filter for listing=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetListingBookings: repository error for listing=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: GetListingBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetListingBookings: fetched %d bookings for listing=%d", len(bookings), req.ListingID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования. Доступно только хосту.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return s.transition(ctx, "UpdateStatus", bookingID, req.UserID, newStatus, func(b *domain.Booking) error {
		return s.checkHostAccess(ctx, "UpdateStatus", b.ListingID, req.UserID)
	})
}

// Cancel отменяет бронирование. Доступно автору бронирования и хосту.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking id=%d by user=%d", bookingID, req.UserID)

	return s.transition(ctx, "Cancel", bookingID, req.UserID, domain.StatusCancelled, func(b *domain.Booking) error {
		if b.IsOwnedBy(req.UserID) {
			return nil
		}
		return s.checkHostAccess(ctx, "Cancel", b.ListingID, req.UserID)
	})
}

// transition - единственная точка смены статуса: проверка прав, графа переходов
// и compare-and-set в одной транзакции
func (s *Service) transition(
	ctx context.Context,
	op string,
	bookingID int64,
	userID int64,
	to domain.BookingStatus,
	authorize func(b *domain.Booking) error,
) (*models.BookingResponse, error) {
	var (
		updated *domain.Booking
		from    domain.BookingStatus
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, op, bookingID)
		if err != nil {
			return err
		}

		if err := authorize(booking); err != nil {
			return err
		}

		from = booking.Status
		if err := domain.Transition(from, to); err != nil {
			s.logger.Warn("%s: booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
		}

		updated, err = s.bookingRepo.UpdateStatus(txCtx, bookingID, from, to)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrStatusConflict):
				s.logger.Warn("%s: booking id=%d status changed concurrently", op, bookingID)
				return ErrStatusConflict
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: booking id=%d %s -> %s", op, bookingID, from, to)

	event := events.BookingStatusChanged{
		BookingID: updated.ID,
		ListingID: updated.ListingID,
		From:      string(from),
		To:        string(to),
		ChangedBy: userID,
		ChangedAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishBookingStatusChanged(ctx, event); err != nil {
		s.logger.Error("%s: failed to publish status change for booking id=%d: %v", op, bookingID, err)
	}

	return models.FromDomainBooking(updated), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkHostAccess проверяет, что пользователь является хостом объявления
func (s *Service) checkHostAccess(ctx context.Context, op string, listingID, userID int64) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("%s: listing id=%d not found", op, listingID)
			return ErrListingNotFound
		}
		s.logger.Error("%s: failed to get listing id=%d: %v", op, listingID, err)
		return fmt.Errorf("%w: %s - failed to get listing: %v", ErrInternal, op, err)
	}

	if !listing.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%d is not the host of listing=%d", op, userID, listingID)
		return ErrAccessDenied
	}

	return nil
}
