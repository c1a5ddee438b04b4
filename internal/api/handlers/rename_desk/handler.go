package rename_desk

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
	msgInvalidDeskID      = "некорректный ID места"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "место не найдено"
	msgForbidden          = "переименовать место может только хост"
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

// Handle PATCH /api/v1/desks/{deskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /desks/{id} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /desks/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /desks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	desk, err := h.service.RenameDesk(r.Context(), deskID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("PATCH /desks/{id} - Invalid input: desk_id=%d, error=%v", deskID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, listings.ErrDeskNotFound), errors.Is(err, listings.ErrListingNotFound):
			h.logger.Warn("PATCH /desks/{id} - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("PATCH /desks/{id} - Access denied: desk_id=%d, user_id=%d", deskID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, listings.ErrDeskLabelTaken):
			h.logger.Warn("PATCH /desks/{id} - Label taken: desk_id=%d, label=%q", deskID, req.Label)
			handlers.RespondConflict(w, msgLabelTaken)

		default:
			h.logger.Error("PATCH /desks/{id} - Failed to rename desk: desk_id=%d, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /desks/{id} - Desk renamed successfully: desk_id=%d, label=%q", deskID, desk.Label)
	handlers.RespondJSON(w, http.StatusOK, desk)
}
