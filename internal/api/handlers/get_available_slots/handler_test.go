package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/FlexDesk-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/FlexDesk-BookingService/pkg/types"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *stubUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/listings/{listingId}/desks/{deskLabel}/available-slots", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		ListingID: 1,
		DeskLabel: "A1",
		Date:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Timezone:  "Europe/Berlin",
		Slots: []domain.DeskSlot{
			{StartTime: types.TimeString("09:00"), DurationMinutes: 60, Available: true},
			{StartTime: types.TimeString("10:00"), DurationMinutes: 60, Reason: domain.ReasonDeskBooked},
		},
	}}

	rec := serve(uc, "/listings/1/desks/A1/available-slots?date=2026-03-04&duration=1h")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A1", uc.got.DeskLabel)
	assert.Equal(t, "1h", uc.got.Duration)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-04", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, "DESK_BOOKED", resp.Slots[1].Reason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad listing", "/listings/x/desks/A1/available-slots?date=today", nil, http.StatusBadRequest},
		{"missing date", "/listings/1/desks/A1/available-slots", nil, http.StatusBadRequest},
		{"invalid date", "/listings/1/desks/A1/available-slots?date=soon", fmt.Errorf("%w: soon", getAvailableSlots.ErrInvalidDate), http.StatusBadRequest},
		{"invalid duration", "/listings/1/desks/A1/available-slots?date=today&duration=30h", fmt.Errorf("%w: duration", getAvailableSlots.ErrInvalidInput), http.StatusBadRequest},
		{"not found", "/listings/1/desks/A1/available-slots?date=today", getAvailableSlots.ErrListingNotFound, http.StatusNotFound},
		{"internal", "/listings/1/desks/A1/available-slots?date=today", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
