package replace_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
)

type stubService struct {
	windows   *models.ReplaceWindowsRequest
	overrides *models.ReplaceOverridesRequest
	err       error
}

func (s *stubService) ReplaceWindows(_ context.Context, listingID int64, req *models.ReplaceWindowsRequest) (*models.WindowsResponse, error) {
	s.windows = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.WindowsResponse{ListingID: listingID, Windows: req.Windows}, nil
}

func (s *stubService) ReplaceBlackouts(_ context.Context, listingID int64, req *models.ReplaceBlackoutsRequest) (*models.BlackoutsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BlackoutsResponse{ListingID: listingID, Blackouts: req.Blackouts}, nil
}

func (s *stubService) ReplaceOverrides(_ context.Context, deskID int64, req *models.ReplaceOverridesRequest) (*models.OverridesResponse, error) {
	s.overrides = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.OverridesResponse{DeskID: deskID, Overrides: req.Overrides}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *stubService, method, target, payload string, userID int64) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/listings/{listingId}/availability", h.HandleWindows).Methods(http.MethodPut)
	router.HandleFunc("/listings/{listingId}/blackouts", h.HandleBlackouts).Methods(http.MethodPut)
	router.HandleFunc("/desks/{deskId}/overrides", h.HandleOverrides).Methods(http.MethodPut)

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if userID > 0 {
		req = req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{UserID: userID}))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleWindows(t *testing.T) {
	svc := &stubService{}
	payload := `{"windows":[{"dayOfWeek":1,"startTime":"09:00","endTime":"17:00","timezone":"UTC"}]}`

	rec := serve(svc, http.MethodPut, "/listings/1/availability", payload, 100)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.windows)
	assert.Equal(t, int64(100), svc.windows.UserID)
	require.Len(t, svc.windows.Windows, 1)
	assert.Equal(t, "09:00", svc.windows.Windows[0].StartTime)
}

func TestHandleOverrides(t *testing.T) {
	svc := &stubService{}
	payload := `{"overrides":[{"date":"2026-03-04","available":false}]}`

	rec := serve(svc, http.MethodPut, "/desks/11/overrides", payload, 100)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.overrides.Overrides, 1)
	require.NotNil(t, svc.overrides.Overrides[0].Available)
	assert.False(t, *svc.overrides.Overrides[0].Available)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		payload string
		userID  int64
		err     error
		status  int
	}{
		{"anonymous", "/listings/1/blackouts", `{"blackouts":[]}`, 0, nil, http.StatusUnauthorized},
		{"bad id", "/desks/x/overrides", `{"overrides":[]}`, 100, nil, http.StatusBadRequest},
		{"bad body", "/listings/1/blackouts", `{"blackouts":`, 100, nil, http.StatusBadRequest},
		{"invalid", "/listings/1/blackouts", `{"blackouts":[]}`, 100, fmt.Errorf("%w: date", availability.ErrInvalidInput), http.StatusBadRequest},
		{"not owner", "/listings/1/availability", `{"windows":[]}`, 100, availability.ErrAccessDenied, http.StatusForbidden},
		{"no listing", "/listings/1/availability", `{"windows":[]}`, 100, availability.ErrListingNotFound, http.StatusNotFound},
		{"no desk", "/desks/11/overrides", `{"overrides":[]}`, 100, availability.ErrDeskNotFound, http.StatusNotFound},
		{"internal", "/desks/11/overrides", `{"overrides":[]}`, 100, availability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, http.MethodPut, tt.target, tt.payload, tt.userID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
