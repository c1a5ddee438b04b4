package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability"
)

const (
	msgInvalidListingID = "некорректный ID объявления"
	msgInvalidDeskID    = "некорректный ID места"
	msgListingNotFound  = "объявление не найдено"
	msgDeskNotFound     = "место не найдено"
)

// Handler отдает правила доступности в том виде, в каком их сохранил хост
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleWindows GET /api/v1/listings/{listingId}/availability
func (h *Handler) HandleWindows(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseInt(mux.Vars(r)["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/availability - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	result, err := h.service.GetWindows(r.Context(), listingID)
	if err != nil {
		h.respondError(w, "GET /listings/{id}/availability", listingID, err)
		return
	}

	h.logger.Info("GET /listings/{id}/availability - Windows retrieved successfully: listing_id=%d, count=%d",
		listingID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBlackouts GET /api/v1/listings/{listingId}/blackouts
func (h *Handler) HandleBlackouts(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseInt(mux.Vars(r)["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/blackouts - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	result, err := h.service.GetBlackouts(r.Context(), listingID)
	if err != nil {
		h.respondError(w, "GET /listings/{id}/blackouts", listingID, err)
		return
	}

	h.logger.Info("GET /listings/{id}/blackouts - Blackouts retrieved successfully: listing_id=%d, count=%d",
		listingID, len(result.Blackouts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleOverrides GET /api/v1/desks/{deskId}/overrides
func (h *Handler) HandleOverrides(w http.ResponseWriter, r *http.Request) {
	deskID, err := strconv.ParseInt(mux.Vars(r)["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /desks/{id}/overrides - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	result, err := h.service.GetOverrides(r.Context(), deskID)
	if err != nil {
		h.respondError(w, "GET /desks/{id}/overrides", deskID, err)
		return
	}

	h.logger.Info("GET /desks/{id}/overrides - Overrides retrieved successfully: desk_id=%d, count=%d",
		deskID, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, availability.ErrListingNotFound):
		h.logger.Warn("%s - Listing not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgListingNotFound)

	case errors.Is(err, availability.ErrDeskNotFound):
		h.logger.Warn("%s - Desk not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgDeskNotFound)

	default:
		h.logger.Error("%s - Failed to get availability: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
