package create_desk

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
	msgForbidden          = "добавлять места может только хост"
	msgLabelTaken         = "место с такой меткой уже существует"
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

// Handle POST /api/v1/listings/{listingId}/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /listings/{id}/desks - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /listings/{id}/desks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /listings/{id}/desks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	desk, err := h.service.CreateDesk(r.Context(), listingID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("POST /listings/{id}/desks - Invalid input: listing_id=%d, error=%v", listingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, listings.ErrListingNotFound):
			h.logger.Warn("POST /listings/{id}/desks - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("POST /listings/{id}/desks - Access denied: listing_id=%d, user_id=%d", listingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, listings.ErrDeskLabelTaken):
			h.logger.Warn("POST /listings/{id}/desks - Label taken: listing_id=%d, label=%q", listingID, req.Label)
			handlers.RespondConflict(w, msgLabelTaken)

		default:
			h.logger.Error("POST /listings/{id}/desks - Failed to create desk: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /listings/{id}/desks - Desk created successfully: listing_id=%d, desk_id=%d", listingID, desk.ID)
	handlers.RespondJSON(w, http.StatusCreated, desk)
}
