package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/bookings"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/bookings/models"
)

type stubService struct {
	bookingID int64
	got       *models.UpdateStatusRequest
	err       error
}

func (s *stubService) UpdateStatus(_ context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.bookingID = bookingID
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: bookingID, Status: req.Status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *stubService, path, payload string, userID int64) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(payload))
	if userID > 0 {
		req = req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{UserID: userID}))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/bookings/5/status", `{"status":"upcoming"}`, 100)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.bookingID)
	assert.Equal(t, int64(100), svc.got.UserID)
	assert.Equal(t, "upcoming", svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		userID int64
		err    error
		status int
	}{
		{"bad id", "/bookings/abc/status", 100, nil, http.StatusBadRequest},
		{"anonymous", "/bookings/5/status", 0, nil, http.StatusUnauthorized},
		{"invalid status", "/bookings/5/status", 100, fmt.Errorf("%w: status", bookings.ErrInvalidInput), http.StatusBadRequest},
		{"not found", "/bookings/5/status", 100, fmt.Errorf("%w: get", bookings.ErrBookingNotFound), http.StatusNotFound},
		{"not host", "/bookings/5/status", 100, fmt.Errorf("%w: host", bookings.ErrAccessDenied), http.StatusForbidden},
		{"illegal", "/bookings/5/status", 100, fmt.Errorf("%w: cancelled", bookings.ErrIllegalTransition), http.StatusConflict},
		{"raced", "/bookings/5/status", 100, fmt.Errorf("%w: cas", bookings.ErrStatusConflict), http.StatusConflict},
		{"internal", "/bookings/5/status", 100, fmt.Errorf("%w: db", bookings.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, tt.path, `{"status":"upcoming"}`, tt.userID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
