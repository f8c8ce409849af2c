package bookingform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

type resolverFunc func(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)

func (f resolverFunc) Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	return f(ctx, req)
}

type submitterFunc func(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)

func (f submitterFunc) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	return f(ctx, req)
}

var testDate = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

func snapshot(seq uint64, booked ...types.TimeString) *get_available_slots.Response {
	slots := []domain.Slot{
		{StartTime: "14:00:00", Available: true},
		{StartTime: "14:30:00", Available: true},
		{StartTime: "15:00:00", Available: true},
	}
	for i := range slots {
		for _, b := range booked {
			if slots[i].StartTime == b {
				slots[i].Available = false
			}
		}
	}
	return &get_available_slots.Response{Date: testDate, Seq: seq, Slots: slots, HoursHint: "Booking hours (weekdays): 14:00-20:00"}
}

func staticResolver(booked ...types.TimeString) resolverFunc {
	return func(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
		return snapshot(req.Seq, booked...), nil
	}
}

func noSubmit(t *testing.T) submitterFunc {
	return func(context.Context, *create_booking.Request) (*create_booking.Response, error) {
		t.Fatal("unexpected submit")
		return nil, nil
	}
}

func TestForm_SelectDate(t *testing.T) {
	form := New(staticResolver("14:30:00"), noSubmit(t))

	require.NoError(t, form.SelectDate(context.Background(), testDate))

	state := form.State()
	assert.Equal(t, uint64(1), state.Seq)
	assert.Equal(t, testDate, state.Date)
	require.Len(t, state.Slots, 3)
	assert.False(t, state.Slots[1].Available)
	assert.Equal(t, "Booking hours (weekdays): 14:00-20:00", state.HoursHint)
	assert.Equal(t, Message{}, state.Message)
}

func TestForm_SelectDate_Zero(t *testing.T) {
	form := New(resolverFunc(func(context.Context, *get_available_slots.Request) (*get_available_slots.Response, error) {
		t.Fatal("resolver must not be called without a date")
		return nil, nil
	}), noSubmit(t))

	require.NoError(t, form.SelectService(context.Background(), "svc_beard"))
	assert.Equal(t, MsgSelectDate, form.State().Message.Text)
}

func TestForm_NoSlots(t *testing.T) {
	form := New(staticResolver("14:00:00", "14:30:00", "15:00:00"), noSubmit(t))

	require.NoError(t, form.SelectDate(context.Background(), testDate))
	assert.Equal(t, Message{Kind: MessageInfo, Text: MsgNoSlots}, form.State().Message)
}

func TestForm_ResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", get_available_slots.ErrNotConfigured, MsgNotConfigured},
		{"fetch failed", fmt.Errorf("%w: timeout", get_available_slots.ErrFetchFailed), MsgLoadFailed},
		{"out of range", get_available_slots.ErrDateOutOfRange, MsgDateOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := New(resolverFunc(func(context.Context, *get_available_slots.Request) (*get_available_slots.Response, error) {
				return nil, tt.err
			}), noSubmit(t))

			err := form.SelectDate(context.Background(), testDate)
			assert.ErrorIs(t, err, tt.err)
			state := form.State()
			assert.Equal(t, tt.want, state.Message.Text)
			assert.Empty(t, state.Slots)
		})
	}
}

func TestForm_SelectionClearsSlot(t *testing.T) {
	form := New(staticResolver(), noSubmit(t))
	ctx := context.Background()

	require.NoError(t, form.SelectDate(ctx, testDate))
	require.NoError(t, form.SelectSlot("14:00:00"))
	assert.Equal(t, types.TimeString("14:00:00"), form.State().Slot)

	require.NoError(t, form.SelectService(ctx, "svc_lining"))
	state := form.State()
	assert.True(t, state.Slot.IsZero())
	assert.Equal(t, uint64(2), state.Seq)

	require.NoError(t, form.SelectSlot("15:00:00"))
	require.NoError(t, form.SelectDate(ctx, testDate.AddDate(0, 0, 1)))
	assert.True(t, form.State().Slot.IsZero())
}

func TestForm_SelectSlot_Unavailable(t *testing.T) {
	form := New(staticResolver("14:30:00"), noSubmit(t))

	assert.ErrorIs(t, form.SelectSlot("14:00:00"), ErrSlotUnavailable)

	require.NoError(t, form.SelectDate(context.Background(), testDate))
	assert.ErrorIs(t, form.SelectSlot("14:30:00"), ErrSlotUnavailable)
	assert.ErrorIs(t, form.SelectSlot("19:45:00"), ErrSlotUnavailable)
	assert.True(t, form.State().Slot.IsZero())
}

func TestForm_Apply_Stale(t *testing.T) {
	form := New(staticResolver(), noSubmit(t))
	ctx := context.Background()

	require.NoError(t, form.SelectDate(ctx, testDate))
	require.NoError(t, form.SelectDate(ctx, testDate.AddDate(0, 0, 1)))

	assert.ErrorIs(t, form.Apply(snapshot(1, "14:00:00")), ErrStaleResponse)
	assert.ErrorIs(t, form.Apply(nil), ErrStaleResponse)
	assert.True(t, form.State().Slots[0].Available)
}

func TestForm_OutOfOrderResponses(t *testing.T) {
	release := make(chan struct{})
	firstCalled := make(chan struct{})

	resolver := resolverFunc(func(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
		if req.Seq == 1 {
			close(firstCalled)
			<-release
			return snapshot(req.Seq, "14:00:00", "14:30:00", "15:00:00"), nil
		}
		return snapshot(req.Seq), nil
	})
	form := New(resolver, noSubmit(t))
	ctx := context.Background()

	var firstErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = form.SelectDate(ctx, testDate)
	}()

	<-firstCalled
	require.NoError(t, form.SelectDate(ctx, testDate.AddDate(0, 0, 1)))
	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, ErrStaleResponse)
	state := form.State()
	assert.Equal(t, uint64(2), state.Seq)
	assert.Equal(t, 3, domain.CountAvailable(state.Slots))
}

func filledForm(t *testing.T, submitter BookingSubmitter) *Form {
	t.Helper()
	form := New(staticResolver(), submitter)
	ctx := context.Background()
	require.NoError(t, form.SelectDate(ctx, testDate))
	require.NoError(t, form.SelectService(ctx, "svc_full_haircut"))
	require.NoError(t, form.SelectSlot("14:30:00"))
	form.SetName("Ivan")
	form.SetPhone("+7 995 890-65-01")
	return form
}

func TestForm_Submit_Success(t *testing.T) {
	var got *create_booking.Request
	form := filledForm(t, submitterFunc(func(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
		got = req
		return &create_booking.Response{
			Confirmation: create_booking.Confirmation{Date: req.Date, Slot: "14:30:00", BookingRef: "Shop-000042"},
			Availability: snapshot(req.Seq, "14:30:00"),
		}, nil
	}))

	resp, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Shop-000042", resp.Confirmation.BookingRef)

	require.NotNil(t, got)
	assert.Equal(t, "svc_full_haircut", got.ServiceID)
	assert.Equal(t, "14:30:00", got.SlotTime)
	assert.Equal(t, "Ivan", got.CustomerName)
	assert.Equal(t, uint64(2), got.Seq)

	state := form.State()
	assert.True(t, state.Slot.IsZero())
	assert.Empty(t, state.Name)
	assert.Empty(t, state.Phone)
	assert.Equal(t, "svc_full_haircut", state.ServiceID)
	assert.Equal(t, testDate, state.Date)
	assert.False(t, state.Slots[1].Available)
	assert.Equal(t, Message{Kind: MessageSuccess, Text: MsgBookingSent}, state.Message)
}

func TestForm_Submit_Conflict(t *testing.T) {
	form := filledForm(t, submitterFunc(func(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
		return nil, &create_booking.ConflictError{Availability: snapshot(req.Seq, "14:30:00", "15:00:00")}
	}))

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, create_booking.ErrSlotTaken)

	state := form.State()
	assert.True(t, state.Slot.IsZero())
	assert.Equal(t, "Ivan", state.Name)
	assert.Equal(t, 1, domain.CountAvailable(state.Slots))
	assert.Equal(t, MsgSlotTaken, state.Message.Text)
}

func TestForm_Submit_ConflictWithoutSnapshot(t *testing.T) {
	form := filledForm(t, submitterFunc(func(context.Context, *create_booking.Request) (*create_booking.Response, error) {
		return nil, &create_booking.ConflictError{}
	}))

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, create_booking.ErrSlotTaken)

	state := form.State()
	assert.True(t, state.Slot.IsZero())
	assert.True(t, state.Slots[0].Available)
	assert.False(t, state.Slots[1].Available)
}

func TestForm_Submit_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"date", fmt.Errorf("%w: %w", create_booking.ErrValidation, create_booking.ErrDateRequired), MsgSelectDate},
		{"service", fmt.Errorf("%w: %w", create_booking.ErrValidation, create_booking.ErrServiceNotFound), MsgSelectService},
		{"slot", fmt.Errorf("%w: %w", create_booking.ErrValidation, create_booking.ErrSlotRequired), MsgSelectSlot},
		{"name", fmt.Errorf("%w: %w", create_booking.ErrValidation, create_booking.ErrNameRequired), MsgEnterName},
		{"phone", fmt.Errorf("%w: %w", create_booking.ErrValidation, create_booking.ErrInvalidPhone), MsgInvalidPhone},
		{"not configured", create_booking.ErrNotConfigured, MsgNotConfigured},
		{"store failure", errors.New("connection reset"), "Booking failed: connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := filledForm(t, submitterFunc(func(context.Context, *create_booking.Request) (*create_booking.Response, error) {
				return nil, tt.err
			}))

			_, err := form.Submit(context.Background())
			assert.ErrorIs(t, err, tt.err)

			state := form.State()
			assert.Equal(t, tt.want, state.Message.Text)
			assert.Equal(t, types.TimeString("14:30:00"), state.Slot)
			assert.Equal(t, "Ivan", state.Name)
			assert.Equal(t, "+7 995 890-65-01", state.Phone)
			assert.False(t, state.Submitting)
		})
	}
}

func TestForm_Submit_InProgress(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	form := filledForm(t, submitterFunc(func(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
		close(started)
		<-release
		return &create_booking.Response{Availability: snapshot(req.Seq)}, nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		done <- err
	}()

	<-started
	assert.True(t, form.State().Submitting)
	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	assert.NoError(t, <-done)
}

func TestForm_Submit_SuccessWithoutSnapshot(t *testing.T) {
	form := filledForm(t, submitterFunc(func(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
		return &create_booking.Response{
			Confirmation: create_booking.Confirmation{Date: req.Date, Slot: "14:30:00"},
		}, nil
	}))

	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	state := form.State()
	assert.True(t, state.Slot.IsZero())
	assert.True(t, state.Slots[0].Available)
	assert.False(t, state.Slots[1].Available)
	assert.Equal(t, MsgBookingSent, state.Message.Text)
	assert.ErrorIs(t, form.SelectSlot("14:30:00"), ErrSlotUnavailable)
}

func TestForm_Submit_ConflictAfterDateChange(t *testing.T) {
	otherDate := testDate.AddDate(0, 0, 1)

	var form *Form
	form = filledForm(t, submitterFunc(func(ctx context.Context, _ *create_booking.Request) (*create_booking.Response, error) {
		require.NoError(t, form.SelectDate(ctx, otherDate))
		require.NoError(t, form.SelectSlot("14:30:00"))
		return nil, &create_booking.ConflictError{}
	}))

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, create_booking.ErrSlotTaken)

	state := form.State()
	assert.Equal(t, otherDate, state.Date)
	assert.Equal(t, types.TimeString("14:30:00"), state.Slot)
	assert.Equal(t, 3, domain.CountAvailable(state.Slots))
	assert.Equal(t, MsgSlotTaken, state.Message.Text)
}

func TestForm_Submit_SuccessAfterDateChange(t *testing.T) {
	otherDate := testDate.AddDate(0, 0, 1)

	var form *Form
	form = filledForm(t, submitterFunc(func(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
		require.NoError(t, form.SelectDate(ctx, otherDate))
		require.NoError(t, form.SelectSlot("14:30:00"))
		return &create_booking.Response{Availability: snapshot(req.Seq, "14:30:00")}, nil
	}))

	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	state := form.State()
	assert.Equal(t, otherDate, state.Date)
	assert.Equal(t, types.TimeString("14:30:00"), state.Slot)
	assert.Equal(t, 3, domain.CountAvailable(state.Slots))
	assert.Empty(t, state.Name)
	assert.Equal(t, MsgBookingSent, state.Message.Text)
}
