package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseBookingStatus("archived")
	assert.False(t, ok)
}

func TestService_Durations(t *testing.T) {
	min, max := (&Service{DurationMin: 25, DurationMax: 30}).Durations(30)
	assert.Equal(t, 25, min)
	assert.Equal(t, 30, max)

	min, max = (&Service{}).Durations(30)
	assert.Equal(t, 30, min)
	assert.Equal(t, 30, max)

	min, max = (&Service{DurationMin: 10}).Durations(30)
	assert.Equal(t, 10, min)
	assert.Equal(t, 10, max)
}
