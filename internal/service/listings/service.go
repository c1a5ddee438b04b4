package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

// Service сервис объявлений и мест для хостов
type Service struct {
	repo   ListingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(repo ListingRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает объявление; создатель становится хостом
func (s *Service) Create(ctx context.Context, req *models.CreateListingRequest) (*models.ListingResponse, error) {
	listing, err := toDomainListing(req.UserID, req.ListingInput)
	if err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: listing id=%d created by user=%d", created.ID, req.UserID)
	return models.FromDomainListing(created, nil), nil
}

// GetByID получает объявление вместе с местами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ListingResponse, error) {
	listing, err := s.getListing(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	desks, err := s.repo.ListDesks(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list desks for listing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list desks: %v", ErrInternal, err)
	}

	return models.FromDomainListing(listing, desks), nil
}

// Publish перезаписывает цены, флаги, режим, allow-list и часовой пояс
func (s *Service) Publish(ctx context.Context, id int64, req *models.PublishListingRequest) (*models.ListingResponse, error) {
	current, err := s.getOwnedListing(ctx, "Publish", id, req.UserID)
	if err != nil {
		return nil, err
	}

	listing, err := toDomainListing(current.OwnerID, req.ListingInput)
	if err != nil {
		s.logger.Warn("Publish: validation failed for listing id=%d: %v", id, err)
		return nil, err
	}
	listing.ID = current.ID
	listing.CreatedAt = current.CreatedAt

	updated, err := s.repo.Update(ctx, listing)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		s.logger.Error("Publish: repository error for listing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Publish - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Publish: listing id=%d updated, mode=%s, paid=%t, approval=%t, allowList=%d",
		id, updated.Mode, updated.PaidEnabled, updated.RequiresApproval, len(updated.AllowedEmails))

	desks, err := s.repo.ListDesks(ctx, id)
	if err != nil {
		s.logger.Error("Publish: failed to list desks for listing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Publish - list desks: %v", ErrInternal, err)
	}

	return models.FromDomainListing(updated, desks), nil
}

// CreateDesk добавляет место в объявление
func (s *Service) CreateDesk(ctx context.Context, listingID int64, req *models.DeskRequest) (*models.DeskResponse, error) {
	label, err := validateDeskLabel(req.Label)
	if err != nil {
		return nil, err
	}

	if _, err := s.getOwnedListing(ctx, "CreateDesk", listingID, req.UserID); err != nil {
		return nil, err
	}

	desk, err := s.repo.CreateDesk(ctx, &domain.Desk{ListingID: listingID, Label: label})
	if err != nil {
		if errors.Is(err, listingRepo.ErrDeskLabelTaken) {
			s.logger.Warn("CreateDesk: label=%q already taken in listing id=%d", label, listingID)
			return nil, ErrDeskLabelTaken
		}
		s.logger.Error("CreateDesk: repository error for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: CreateDesk - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDesk: desk id=%d label=%q created in listing id=%d", desk.ID, desk.Label, listingID)
	resp := models.FromDomainDesk(desk)
	return &resp, nil
}

// RenameDesk меняет метку места. Исключения доступности привязаны к ID и не теряются.
func (s *Service) RenameDesk(ctx context.Context, deskID int64, req *models.DeskRequest) (*models.DeskResponse, error) {
	label, err := validateDeskLabel(req.Label)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetOwnedDesk(ctx, deskID, req.UserID); err != nil {
		return nil, err
	}

	desk, err := s.repo.RenameDesk(ctx, deskID, label)
	if err != nil {
		switch {
		case errors.Is(err, listingRepo.ErrDeskLabelTaken):
			return nil, ErrDeskLabelTaken
		case errors.Is(err, listingRepo.ErrDeskNotFound):
			return nil, ErrDeskNotFound
		}
		s.logger.Error("RenameDesk: repository error for desk id=%d: %v", deskID, err)
		return nil, fmt.Errorf("%w: RenameDesk - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RenameDesk: desk id=%d renamed to %q", deskID, label)
	resp := models.FromDomainDesk(desk)
	return &resp, nil
}

// GetOwnedDesk получает место и проверяет, что пользователь - хост его объявления
func (s *Service) GetOwnedDesk(ctx context.Context, deskID, userID int64) (*domain.Desk, error) {
	desk, err := s.repo.GetDeskByID(ctx, deskID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrDeskNotFound) {
			s.logger.Warn("GetOwnedDesk: desk id=%d not found", deskID)
			return nil, ErrDeskNotFound
		}
		s.logger.Error("GetOwnedDesk: repository error for desk id=%d: %v", deskID, err)
		return nil, fmt.Errorf("%w: GetOwnedDesk - repository error: %v", ErrInternal, err)
	}

	if _, err := s.getOwnedListing(ctx, "GetOwnedDesk", desk.ListingID, userID); err != nil {
		return nil, err
	}

	return desk, nil
}

// GetOwnedListing получает объявление и проверяет, что пользователь - его хост
func (s *Service) GetOwnedListing(ctx context.Context, listingID, userID int64) (*domain.Listing, error) {
	return s.getOwnedListing(ctx, "GetOwnedListing", listingID, userID)
}

// Вспомогательные методы

func (s *Service) getListing(ctx context.Context, op string, id int64) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("%s: listing id=%d not found", op, id)
			return nil, ErrListingNotFound
		}
		s.logger.Error("%s: repository error for listing id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return listing, nil
}

func (s *Service) getOwnedListing(ctx context.Context, op string, id, userID int64) (*domain.Listing, error) {
	listing, err := s.getListing(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%d is not the host of listing id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}
	return listing, nil
}
