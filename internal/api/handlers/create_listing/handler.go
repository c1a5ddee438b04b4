package create_listing

import (
	"errors"
	"net/http"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/listings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /listings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateListingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /listings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	listing, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		if errors.Is(err, listings.ErrInvalidInput) {
			h.logger.Warn("POST /listings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /listings - Failed to create listing: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /listings - Listing created successfully: listing_id=%d, owner_id=%d", listing.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, listing)
}
