package get_business_info

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/config"
)

func TestHandler(t *testing.T) {
	cfg := config.Default()
	cfg.Business.Phone = "+79958906501"
	cfg.Business.WhatsApp = "79958906501"
	hours, err := cfg.Hours()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(FromConfig(cfg.Business, cfg.Booking, hours)).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/business", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body BusinessInfoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "The Business Zm", body.Name)
	assert.Equal(t, "tel:+79958906501", body.CallURL)
	assert.Equal(t, "https://wa.me/79958906501", body.WhatsAppURL)
	assert.Equal(t, Hours{Open: "14:00", Close: "20:00"}, body.BookingHours.Weekday)
	assert.Equal(t, Hours{Open: "12:00", Close: "20:00"}, body.BookingHours.Weekend)
	assert.Equal(t, 30, body.SlotIntervalMinutes)
}
