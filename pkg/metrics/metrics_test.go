package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBooking(t *testing.T) {
	m := New("test")

	m.ObserveBooking(BookingOutcomeCreated)
	m.ObserveBooking(BookingOutcomeConflict)
	m.ObserveBooking(BookingOutcomeConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttemptsTotal.WithLabelValues(BookingOutcomeCreated)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingAttemptsTotal.WithLabelValues(BookingOutcomeConflict)))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveBooking(BookingOutcomeFailed)
		m.ObserveAvailabilityFetch(false)
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	})
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New("test")
	m.ObserveAvailabilityFetch(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `test_availability_fetches_total{result="ok"} 1`))
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New("test")

	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 201, 15*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 409, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "409")))
}
