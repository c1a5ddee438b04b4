package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func whoAmI(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetUserID(r.Context()); !ok {
		w.Header().Set("X-User", "anonymous")
	} else {
		w.Header().Set("X-User", GetEmail(r.Context()))
	}
	w.WriteHeader(http.StatusNoContent)
}

func serve(mw mux.MiddlewareFunc, header string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(mw)
	r.HandleFunc("/me", whoAmI)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequired(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	token, err := auth.Issue(Identity{UserID: 7, Email: "member@flexdesk.io"})
	require.NoError(t, err)

	rec := serve(auth.Required(), "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "member@flexdesk.io", rec.Header().Get("X-User"))

	rec = serve(auth.Required(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(auth.Required(), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequired_WrongSecret(t *testing.T) {
	token, err := NewAuthenticator("other").Issue(Identity{UserID: 7})
	require.NoError(t, err)

	rec := serve(NewAuthenticator(testSecret).Required(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequired_RejectsBadSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := serve(NewAuthenticator(testSecret).Required(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequired_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "7"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := serve(NewAuthenticator(testSecret).Required(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptional(t *testing.T) {
	auth := NewAuthenticator(testSecret)

	rec := serve(auth.Optional(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "anonymous", rec.Header().Get("X-User"))

	token, err := auth.Issue(Identity{UserID: 7, Email: "member@flexdesk.io"})
	require.NoError(t, err)
	rec = serve(auth.Optional(), "Bearer "+token)
	assert.Equal(t, "member@flexdesk.io", rec.Header().Get("X-User"))

	rec = serve(auth.Optional(), "Bearer broken")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestID(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}
