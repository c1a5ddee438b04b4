package get_listing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings"
)

const (
	msgInvalidListingID = "некорректный ID объявления"
	msgNotFound         = "объявление не найдено"
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

// Handle GET /api/v1/listings/{listingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id} - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	listing, err := h.service.GetByID(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, listings.ErrListingNotFound) {
			h.logger.Warn("GET /listings/{id} - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /listings/{id} - Failed to get listing: listing_id=%d, error=%v", listingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /listings/{id} - Listing retrieved successfully: listing_id=%d", listingID)
	handlers.RespondJSON(w, http.StatusOK, listing)
}
