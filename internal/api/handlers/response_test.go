package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondRejection(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondRejection(rec, http.StatusConflict, "место занято", "DESK_BOOKED")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "место занято", body.Error)
	assert.Equal(t, "DESK_BOOKED", body.Reason)
}

func TestRespondInternalError_NoReason(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "reason")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Label string `json:"label"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"label":"Q-1"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Q-1", dst.Label)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"label":"Q-1","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"label":"Q-1"}{"label":"Q-2"}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &dst))
}
