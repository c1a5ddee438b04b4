package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/users/7/profile":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"email":"member@flexdesk.io","id_verified":true,"accepted_terms_at":"2026-01-02T10:00:00Z"}`))
		case "/internal/users/8/profile":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, nopLogger{})

	profile, err := c.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "member@flexdesk.io", profile.Email)
	assert.True(t, profile.IDVerified)
	require.NotNil(t, profile.AcceptedTermsAt)
	assert.Nil(t, profile.AcceptedLiabilityAt)

	_, err = c.GetProfile(context.Background(), 8)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = c.GetProfile(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GracefulDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/users/8/profile" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := c.GetProfileWithGracefulDegradation(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceDegraded)

	_, err = c.GetProfileWithGracefulDegradation(context.Background(), 8)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}
