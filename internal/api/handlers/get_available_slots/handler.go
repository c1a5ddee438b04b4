package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/FlexDesk-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidListingID = "некорректный ID объявления"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD или today"
	msgInvalidParams    = "некорректные параметры запроса"
	msgListingNotFound  = "объявление не найдено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/listings/{listingId}/desks/{deskLabel}/available-slots
// Query params: date (required, YYYY-MM-DD или today), duration (опционально, "2h")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/desks/{label}/available-slots - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}
	deskLabel := vars["deskLabel"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /listings/{id}/desks/{label}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq := ToUseCaseRequest(listingID, deskLabel, dateStr, r.URL.Query().Get("duration"))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/desks/{label}/available-slots - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /listings/{id}/desks/{label}/available-slots - Invalid date: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /listings/{id}/desks/{label}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /listings/{id}/desks/{label}/available-slots - Failed to get slots: listing_id=%d, desk=%q, error=%v",
				listingID, deskLabel, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings/{id}/desks/{label}/available-slots - Slots retrieved successfully: listing_id=%d, desk=%q, slots_count=%d",
		listingID, deskLabel, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
