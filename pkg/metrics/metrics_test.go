package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAdmission(t *testing.T) {
	m := New("flexdesk_test")

	m.ObserveAdmission("")
	m.ObserveAdmission("BLACKED_OUT")
	m.ObserveAdmission("BLACKED_OUT")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AdmissionDecisions.WithLabelValues("admitted", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AdmissionDecisions.WithLabelValues("rejected", "BLACKED_OUT")))
}

func TestObserveAdmission_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveAdmission("NOT_FOUND") })
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New("flexdesk_test")
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/listings/{listingId}", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flexdesk_test_http_requests_total")
}
