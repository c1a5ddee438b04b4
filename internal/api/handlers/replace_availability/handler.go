package replace_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability"
)

const (
	msgInvalidListingID   = "некорректный ID объявления"
	msgInvalidDeskID      = "некорректный ID места"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgListingNotFound    = "объявление не найдено"
	msgDeskNotFound       = "место не найдено"
	msgForbidden          = "менять доступность может только хост"
)

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

// HandleWindows PUT /api/v1/listings/{listingId}/availability
func (h *Handler) HandleWindows(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /listings/{id}/availability"

	listingID, userID, ok := h.parse(w, r, route, "listingId", msgInvalidListingID)
	if !ok {
		return
	}

	var req WindowsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceWindows(r.Context(), listingID, req.ToServiceRequest(userID))
	if err != nil {
		h.respondError(w, route, listingID, userID, err)
		return
	}

	h.logger.Info("%s - Windows replaced successfully: listing_id=%d, count=%d", route, listingID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBlackouts PUT /api/v1/listings/{listingId}/blackouts
func (h *Handler) HandleBlackouts(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /listings/{id}/blackouts"

	listingID, userID, ok := h.parse(w, r, route, "listingId", msgInvalidListingID)
	if !ok {
		return
	}

	var req BlackoutsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceBlackouts(r.Context(), listingID, req.ToServiceRequest(userID))
	if err != nil {
		h.respondError(w, route, listingID, userID, err)
		return
	}

	h.logger.Info("%s - Blackouts replaced successfully: listing_id=%d, count=%d", route, listingID, len(result.Blackouts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleOverrides PUT /api/v1/desks/{deskId}/overrides
func (h *Handler) HandleOverrides(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /desks/{id}/overrides"

	deskID, userID, ok := h.parse(w, r, route, "deskId", msgInvalidDeskID)
	if !ok {
		return
	}

	var req OverridesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceOverrides(r.Context(), deskID, req.ToServiceRequest(userID))
	if err != nil {
		h.respondError(w, route, deskID, userID, err)
		return
	}

	h.logger.Info("%s - Overrides replaced successfully: desk_id=%d, count=%d", route, deskID, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parse извлекает ID из пути и пользователя из контекста
func (h *Handler) parse(w http.ResponseWriter, r *http.Request, route, param, invalidMsg string) (int64, int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[param], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid %s: %v", route, param, err)
		handlers.RespondBadRequest(w, invalidMsg)
		return 0, 0, false
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}

	return id, userID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id, userID int64, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: id=%d, error=%v", route, id, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, availability.ErrListingNotFound):
		h.logger.Warn("%s - Listing not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgListingNotFound)

	case errors.Is(err, availability.ErrDeskNotFound):
		h.logger.Warn("%s - Desk not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgDeskNotFound)

	case errors.Is(err, availability.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: id=%d, user_id=%d", route, id, userID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed to replace availability: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
