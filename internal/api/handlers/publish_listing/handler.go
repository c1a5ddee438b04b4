package publish_listing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings"
)

const (
	msgInvalidListingID   = "некорректный ID объявления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "объявление не найдено"
	msgForbidden          = "изменять объявление может только хост"
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

// Handle PUT /api/v1/listings/{listingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /listings/{id} - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /listings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PublishListingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /listings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	listing, err := h.service.Publish(r.Context(), listingID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("PUT /listings/{id} - Invalid input: listing_id=%d, error=%v", listingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, listings.ErrListingNotFound):
			h.logger.Warn("PUT /listings/{id} - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("PUT /listings/{id} - Access denied: listing_id=%d, user_id=%d", listingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /listings/{id} - Failed to publish listing: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /listings/{id} - Listing published successfully: listing_id=%d", listingID)
	handlers.RespondJSON(w, http.StatusOK, listing)
}
