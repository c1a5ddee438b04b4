package create_desk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/listings/models"
)

type stubService struct {
	err error
}

func (s *stubService) CreateDesk(_ context.Context, listingID int64, req *models.DeskRequest) (*models.DeskResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DeskResponse{ID: 11, ListingID: listingID, Label: req.Label}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"created", nil, http.StatusCreated},
		{"label taken", listings.ErrDeskLabelTaken, http.StatusConflict},
		{"not owner", listings.ErrAccessDenied, http.StatusForbidden},
		{"no listing", listings.ErrListingNotFound, http.StatusNotFound},
		{"blank label", listings.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/listings/{listingId}/desks", NewHandler(&stubService{err: tt.err}, nopLogger{}).Handle)

			req := httptest.NewRequest(http.MethodPost, "/listings/1/desks", strings.NewReader(`{"label":"A1"}`))
			req = req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{UserID: 100}))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
