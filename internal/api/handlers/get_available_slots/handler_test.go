package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandler_Success(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: date, Seq: 7}).Return(&getAvailableSlots.Response{
		Date:      date,
		DayType:   domain.DayTypeWeekday,
		Hours:     domain.OpeningHours{Open: "14:00:00", Close: "20:00:00"},
		HoursHint: "Booking hours (weekdays): 14:00-20:00",
		Seq:       7,
		Slots: []domain.Slot{
			{StartTime: "14:00:00", Available: false},
			{StartTime: "14:30:00", Available: true},
		},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-03-11&seq=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2026-03-11", body.Date)
	assert.Equal(t, "weekday", body.DayType)
	assert.Equal(t, "14:00", body.Open)
	assert.Equal(t, uint64(7), body.Seq)
	assert.Equal(t, 1, body.AvailableCount)
	assert.Equal(t, []AvailableSlot{
		{StartTime: "14:00:00", Label: "14:00", Available: false},
		{StartTime: "14:30:00", Label: "14:30", Available: true},
	}, body.Slots)
	uc.AssertExpectations(t)
}

func TestHandler_EmptySlotsEncodeAsArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:  time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		Slots: []domain.Slot{},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-03-11", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandler_BadParams(t *testing.T) {
	for _, query := range []string{"", "?date=11.03.2026", "?date=2026-03-11&seq=-1"} {
		t.Run(query, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not configured", getAvailableSlots.ErrNotConfigured, http.StatusServiceUnavailable},
		{"out of range", getAvailableSlots.ErrDateOutOfRange, http.StatusBadRequest},
		{"fetch failed", fmt.Errorf("%w: timeout", getAvailableSlots.ErrFetchFailed), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-03-11", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
