package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/handlers"
	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	createBooking "github.com/m04kA/FlexDesk-BookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"listingId":1,"deskLabel":"A1","date":"2026-03-04","time":"10:00","duration":"2h","price":0}`

func do(t *testing.T, uc *stubUseCase, payload string, identity *middleware.Identity) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	userID := int64(7)
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	start, minutes := 600, 120
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:              42,
		ListingID:       1,
		DeskLabel:       "A1",
		Status:          string(domain.StatusUpcoming),
		CheckInCode:     "FD-0042",
		UserID:          &userID,
		BookingDate:     &date,
		StartMinute:     &start,
		DurationMinutes: &minutes,
		Timezone:        "UTC",
		CreatedAt:       date,
	}}

	rec := do(t, uc, body, &middleware.Identity{UserID: 7, Email: "member@flexdesk.io"})
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got.UserID)
	assert.Equal(t, int64(7), *uc.got.UserID)
	assert.Equal(t, "member@flexdesk.io", uc.got.Email)
	assert.Equal(t, "2h", uc.got.Duration)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "FD-0042", resp.CheckInCode)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:00", *resp.StartTime)
	require.NotNil(t, resp.BookingDate)
	assert.Equal(t, "2026-03-04", *resp.BookingDate)
}

func TestHandle_Anonymous(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{ID: 1, CreatedAt: time.Now()}}

	rec := do(t, uc, body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.got.UserID)
	assert.Empty(t, uc.got.Email)
}

func TestHandle_RejectionStatuses(t *testing.T) {
	tests := []struct {
		reason domain.RejectionReason
		status int
	}{
		{domain.ReasonNotFound, http.StatusNotFound},
		{domain.ReasonIDRequired, http.StatusForbidden},
		{domain.ReasonTermsRequired, http.StatusForbidden},
		{domain.ReasonNotApproved, http.StatusForbidden},
		{domain.ReasonLoginRequired, http.StatusUnauthorized},
		{domain.ReasonOutsideWindow, http.StatusConflict},
		{domain.ReasonBlackedOut, http.StatusConflict},
		{domain.ReasonDeskUnavailable, http.StatusConflict},
		{domain.ReasonDeskBooked, http.StatusConflict},
		{domain.ReasonUnparseableRequest, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			uc := &stubUseCase{err: fmt.Errorf("wrapped: %w", &createBooking.RejectionError{Reason: tt.reason})}

			rec := do(t, uc, body, nil)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.reason), resp.Reason)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		status  int
		reason  string
	}{
		{"bad json", `{"listingId":`, nil, http.StatusBadRequest, ""},
		{"unknown field", `{"seat":"A1"}`, nil, http.StatusBadRequest, ""},
		{"invalid input", body, fmt.Errorf("%w: price", createBooking.ErrInvalidInput), http.StatusBadRequest, ""},
		{"desk busy", body, fmt.Errorf("%w: hold", createBooking.ErrDeskBusy), http.StatusConflict, "DESK_BUSY"},
		{"internal", body, fmt.Errorf("%w: db", createBooking.ErrInternal), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}

			rec := do(t, uc, tt.payload, nil)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}
