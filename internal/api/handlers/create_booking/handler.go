package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	createBooking "github.com/m04kA/FlexDesk-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/FlexDesk-BookingService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDeskBusy           = "место сейчас бронирует другой пользователь, повторите попытку"
	msgRejected           = "бронирование отклонено"

	reasonDeskBusy = "DESK_BUSY"
)

// rejections статус и сообщение для каждой причины отказа
var rejections = map[domain.RejectionReason]struct {
	status  int
	message string
}{
	domain.ReasonNotFound:           {http.StatusNotFound, "объявление не найдено"},
	domain.ReasonIDRequired:         {http.StatusForbidden, "требуется подтверждение личности"},
	domain.ReasonTermsRequired:      {http.StatusForbidden, "необходимо принять условия и отказ от ответственности"},
	domain.ReasonLoginRequired:      {http.StatusUnauthorized, "требуется авторизация"},
	domain.ReasonNotApproved:        {http.StatusForbidden, "ваш email не входит в список допущенных"},
	domain.ReasonUnparseableRequest: {http.StatusUnprocessableEntity, "не удалось разобрать дату, время или длительность"},
	domain.ReasonOutsideWindow:      {http.StatusConflict, "выбранное время вне окна доступности"},
	domain.ReasonBlackedOut:         {http.StatusConflict, "выбранная дата заблокирована"},
	domain.ReasonDeskUnavailable:    {http.StatusConflict, "место недоступно в выбранную дату"},
	domain.ReasonDeskBooked:         {http.StatusConflict, "место уже забронировано на это время"},
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Авторизация необязательна: анонимный запрос тоже проходит допуск
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = ptr.Ptr(id)
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, middleware.GetEmail(r.Context())))
	if err != nil {
		if reason, ok := createBooking.ReasonOf(err); ok {
			h.logger.Warn("POST /bookings - Rejected: listing_id=%d, desk=%q, reason=%s",
				req.ListingID, req.DeskLabel, reason)
			rejection, known := rejections[reason]
			if !known {
				handlers.RespondRejection(w, http.StatusConflict, msgRejected, string(reason))
				return
			}
			handlers.RespondRejection(w, rejection.status, rejection.message, string(reason))
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDeskBusy):
			h.logger.Warn("POST /bookings - Desk busy: listing_id=%d, desk=%q", req.ListingID, req.DeskLabel)
			handlers.RespondRejection(w, http.StatusConflict, msgDeskBusy, reasonDeskBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: listing_id=%d, desk=%q, error=%v",
				req.ListingID, req.DeskLabel, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, listing_id=%d, status=%s",
		result.ID, result.ListingID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
