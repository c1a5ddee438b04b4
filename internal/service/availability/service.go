package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
)

// Service сервис настройки доступности для хостов.
// Каждое сохранение заменяет набор целиком в одной транзакции.
type Service struct {
	repo        AvailabilityRepository
	listingRepo ListingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	repo AvailabilityRepository,
	listingRepo ListingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:        repo,
		listingRepo: listingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetWindows возвращает окна доступности объявления
func (s *Service) GetWindows(ctx context.Context, listingID int64) (*models.WindowsResponse, error) {
	if _, err := s.getListing(ctx, "GetWindows", listingID); err != nil {
		return nil, err
	}

	windows, err := s.repo.GetWindows(ctx, listingID)
	if err != nil {
		s.logger.Error("GetWindows: repository error for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: GetWindows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindows(listingID, windows), nil
}

// ReplaceWindows заменяет окна доступности объявления
func (s *Service) ReplaceWindows(ctx context.Context, listingID int64, req *models.ReplaceWindowsRequest) (*models.WindowsResponse, error) {
	if err := s.checkListingOwner(ctx, "ReplaceWindows", listingID, req.UserID); err != nil {
		return nil, err
	}

	windows, err := toDomainWindows(listingID, req.Windows)
	if err != nil {
		s.logger.Warn("ReplaceWindows: validation failed for listing id=%d: %v", listingID, err)
		return nil, err
	}

	var saved []domain.AvailabilityWindow
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.ReplaceWindows(txCtx, listingID, windows); err != nil {
			return err
		}
		var err error
		saved, err = s.repo.GetWindows(txCtx, listingID)
		return err
	})
	if err != nil {
		s.logger.Error("ReplaceWindows: failed for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: ReplaceWindows - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWindows: listing id=%d now has %d windows", listingID, len(saved))
	return models.FromDomainWindows(listingID, saved), nil
}

// GetBlackouts возвращает блокировки дат объявления
func (s *Service) GetBlackouts(ctx context.Context, listingID int64) (*models.BlackoutsResponse, error) {
	if _, err := s.getListing(ctx, "GetBlackouts", listingID); err != nil {
		return nil, err
	}

	blackouts, err := s.repo.GetBlackouts(ctx, listingID, nil, nil)
	if err != nil {
		s.logger.Error("GetBlackouts: repository error for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: GetBlackouts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlackouts(listingID, blackouts), nil
}

// ReplaceBlackouts заменяет блокировки дат объявления
func (s *Service) ReplaceBlackouts(ctx context.Context, listingID int64, req *models.ReplaceBlackoutsRequest) (*models.BlackoutsResponse, error) {
	if err := s.checkListingOwner(ctx, "ReplaceBlackouts", listingID, req.UserID); err != nil {
		return nil, err
	}

	blackouts, err := toDomainBlackouts(listingID, req.Blackouts)
	if err != nil {
		s.logger.Warn("ReplaceBlackouts: validation failed for listing id=%d: %v", listingID, err)
		return nil, err
	}

	var saved []domain.BlackoutDate
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.ReplaceBlackouts(txCtx, listingID, blackouts); err != nil {
			return err
		}
		var err error
		saved, err = s.repo.GetBlackouts(txCtx, listingID, nil, nil)
		return err
	})
	if err != nil {
		s.logger.Error("ReplaceBlackouts: failed for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: ReplaceBlackouts - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceBlackouts: listing id=%d now has %d blackouts", listingID, len(saved))
	return models.FromDomainBlackouts(listingID, saved), nil
}

// GetOverrides возвращает исключения доступности места
func (s *Service) GetOverrides(ctx context.Context, deskID int64) (*models.OverridesResponse, error) {
	if _, err := s.getDesk(ctx, "GetOverrides", deskID); err != nil {
		return nil, err
	}

	overrides, err := s.repo.GetOverrides(ctx, deskID, nil)
	if err != nil {
		s.logger.Error("GetOverrides: repository error for desk id=%d: %v", deskID, err)
		return nil, fmt.Errorf("%w: GetOverrides - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrides(deskID, overrides), nil
}

// ReplaceOverrides заменяет исключения доступности места
func (s *Service) ReplaceOverrides(ctx context.Context, deskID int64, req *models.ReplaceOverridesRequest) (*models.OverridesResponse, error) {
	desk, err := s.getDesk(ctx, "ReplaceOverrides", deskID)
	if err != nil {
		return nil, err
	}
	if err := s.checkListingOwner(ctx, "ReplaceOverrides", desk.ListingID, req.UserID); err != nil {
		return nil, err
	}

	overrides, err := toDomainOverrides(deskID, req.Overrides)
	if err != nil {
		s.logger.Warn("ReplaceOverrides: validation failed for desk id=%d: %v", deskID, err)
		return nil, err
	}

	var saved []domain.DeskAvailabilityOverride
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.ReplaceOverrides(txCtx, deskID, overrides); err != nil {
			return err
		}
		var err error
		saved, err = s.repo.GetOverrides(txCtx, deskID, nil)
		return err
	})
	if err != nil {
		s.logger.Error("ReplaceOverrides: failed for desk id=%d: %v", deskID, err)
		return nil, fmt.Errorf("%w: ReplaceOverrides - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceOverrides: desk id=%d now has %d overrides", deskID, len(saved))
	return models.FromDomainOverrides(deskID, saved), nil
}

// Вспомогательные методы

func (s *Service) getListing(ctx context.Context, op string, listingID int64) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("%s: listing id=%d not found", op, listingID)
			return nil, ErrListingNotFound
		}
		s.logger.Error("%s: failed to get listing id=%d: %v", op, listingID, err)
		return nil, fmt.Errorf("%w: %s - failed to get listing: %v", ErrInternal, op, err)
	}
	return listing, nil
}

func (s *Service) getDesk(ctx context.Context, op string, deskID int64) (*domain.Desk, error) {
	desk, err := s.listingRepo.GetDeskByID(ctx, deskID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrDeskNotFound) {
			s.logger.Warn("%s: desk id=%d not found", op, deskID)
			return nil, ErrDeskNotFound
		}
		s.logger.Error("%s: failed to get desk id=%d: %v", op, deskID, err)
		return nil, fmt.Errorf("%w: %s - failed to get desk: %v", ErrInternal, op, err)
	}
	return desk, nil
}

func (s *Service) checkListingOwner(ctx context.Context, op string, listingID, userID int64) error {
	listing, err := s.getListing(ctx, op, listingID)
	if err != nil {
		return err
	}
	if !listing.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%d is not the host of listing id=%d", op, userID, listingID)
		return ErrAccessDenied
	}
	return nil
}
