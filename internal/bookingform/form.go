package bookingform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Form состояние формы бронирования
// Каждое изменение даты или услуги увеличивает seq, ответы со старым seq отбрасываются
type Form struct {
	resolver  AvailabilityResolver
	submitter BookingSubmitter

	mu         sync.Mutex
	date       time.Time
	serviceID  string
	slot       types.TimeString
	name       string
	phone      string
	seq        uint64
	snapshot   *get_available_slots.Response
	message    Message
	submitting bool
}

// New создает пустую форму
func New(resolver AvailabilityResolver, submitter BookingSubmitter) *Form {
	return &Form{
		resolver:  resolver,
		submitter: submitter,
	}
}

// SelectDate выбирает дату и загружает доступность
func (f *Form) SelectDate(ctx context.Context, date time.Time) error {
	f.mu.Lock()
	f.date = date
	seq := f.resetSelection()
	f.mu.Unlock()

	return f.resolve(ctx, date, seq)
}

// SelectService выбирает услугу и перезагружает доступность
func (f *Form) SelectService(ctx context.Context, serviceID string) error {
	f.mu.Lock()
	f.serviceID = serviceID
	date := f.date
	seq := f.resetSelection()
	f.mu.Unlock()

	return f.resolve(ctx, date, seq)
}

// SelectSlot выбирает слот из текущего снимка
func (f *Form) SelectSlot(slot types.TimeString) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.snapshot == nil {
		return ErrSlotUnavailable
	}
	for _, s := range f.snapshot.Slots {
		if s.StartTime == slot && s.Available {
			f.slot = slot
			return nil
		}
	}
	return ErrSlotUnavailable
}

// SetName задает имя клиента
func (f *Form) SetName(name string) {
	f.mu.Lock()
	f.name = name
	f.mu.Unlock()
}

// SetPhone задает телефон клиента
func (f *Form) SetPhone(phone string) {
	f.mu.Lock()
	f.phone = phone
	f.mu.Unlock()
}

// Apply принимает ответ доступности, если он относится к текущему выбору
func (f *Form) Apply(resp *get_available_slots.Response) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applyLocked(resp)
}

// Submit отправляет бронирование
func (f *Form) Submit(ctx context.Context) (*create_booking.Response, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	f.submitting = true
	req := &create_booking.Request{
		Date:          f.date,
		ServiceID:     f.serviceID,
		SlotTime:      f.slot.String(),
		CustomerName:  f.name,
		CustomerPhone: f.phone,
		Seq:           f.seq,
	}
	f.mu.Unlock()

	resp, err := f.submitter.Execute(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	// Пока шла отправка, дата или услуга могли смениться: тогда выбор и снимок уже чужие
	current := req.Seq == f.seq

	if err != nil {
		var conflict *create_booking.ConflictError
		if errors.As(err, &conflict) {
			f.message = Message{Kind: MessageError, Text: MsgSlotTaken}
			if current {
				f.handleConflict(conflict, req.SlotTime)
			}
			return nil, err
		}
		f.message = submitErrorMessage(err)
		return nil, err
	}

	f.name = ""
	f.phone = ""
	f.message = Message{Kind: MessageSuccess, Text: MsgBookingSent}
	if !current {
		return resp, nil
	}

	f.slot = ""
	if resp != nil && resp.Availability != nil && resp.Availability.Seq == f.seq {
		f.snapshot = resp.Availability
	} else {
		f.markTaken(req.SlotTime)
	}
	return resp, nil
}

// State возвращает копию текущего состояния
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := State{
		Date:       f.date,
		ServiceID:  f.serviceID,
		Slot:       f.slot,
		Name:       f.name,
		Phone:      f.phone,
		Seq:        f.seq,
		Message:    f.message,
		Submitting: f.submitting,
	}
	if f.snapshot != nil {
		state.Slots = append([]domain.Slot(nil), f.snapshot.Slots...)
		state.HoursHint = f.snapshot.HoursHint
	}
	return state
}

// resetSelection вызывается под блокировкой
func (f *Form) resetSelection() uint64 {
	f.seq++
	f.slot = ""
	f.snapshot = nil
	f.message = Message{}
	return f.seq
}

func (f *Form) resolve(ctx context.Context, date time.Time, seq uint64) error {
	if date.IsZero() {
		f.setMessage(seq, Message{Kind: MessageInfo, Text: MsgSelectDate})
		return nil
	}

	resp, err := f.resolver.Execute(ctx, &get_available_slots.Request{Date: date, Seq: seq})
	if err != nil {
		if !f.setMessage(seq, resolveErrorMessage(err)) {
			return ErrStaleResponse
		}
		return err
	}
	return f.Apply(resp)
}

func (f *Form) applyLocked(resp *get_available_slots.Response) error {
	if resp == nil || resp.Seq != f.seq {
		return ErrStaleResponse
	}
	f.snapshot = resp
	if domain.CountAvailable(resp.Slots) == 0 {
		f.message = Message{Kind: MessageInfo, Text: MsgNoSlots}
	} else {
		f.message = Message{}
	}
	return nil
}

// setMessage устанавливает сообщение, если seq еще актуален
func (f *Form) setMessage(seq uint64, msg Message) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		return false
	}
	f.message = msg
	return true
}

// handleConflict вызывается под блокировкой
func (f *Form) handleConflict(conflict *create_booking.ConflictError, taken string) {
	f.slot = ""

	if conflict.Availability != nil && conflict.Availability.Seq == f.seq {
		f.snapshot = conflict.Availability
		return
	}
	f.markTaken(taken)
}

// markTaken помечает слот занятым в копии текущего снимка, вызывается под блокировкой
// Используется, когда свежий снимок не получен
func (f *Form) markTaken(taken string) {
	if f.snapshot == nil {
		return
	}

	slots := append([]domain.Slot(nil), f.snapshot.Slots...)
	for i := range slots {
		if slots[i].StartTime.String() == taken {
			slots[i].Available = false
		}
	}
	updated := *f.snapshot
	updated.Slots = slots
	f.snapshot = &updated
}

func resolveErrorMessage(err error) Message {
	switch {
	case errors.Is(err, get_available_slots.ErrNotConfigured):
		return Message{Kind: MessageError, Text: MsgNotConfigured}
	case errors.Is(err, get_available_slots.ErrDateOutOfRange):
		return Message{Kind: MessageError, Text: MsgDateOutOfRange}
	case errors.Is(err, get_available_slots.ErrInvalidInput):
		return Message{Kind: MessageInfo, Text: MsgSelectDate}
	default:
		return Message{Kind: MessageError, Text: MsgLoadFailed}
	}
}

func submitErrorMessage(err error) Message {
	switch {
	case errors.Is(err, create_booking.ErrNotConfigured):
		return Message{Kind: MessageError, Text: MsgNotConfigured}
	case errors.Is(err, create_booking.ErrDateRequired):
		return Message{Kind: MessageError, Text: MsgSelectDate}
	case errors.Is(err, create_booking.ErrDateOutOfRange):
		return Message{Kind: MessageError, Text: MsgDateOutOfRange}
	case errors.Is(err, create_booking.ErrServiceNotFound):
		return Message{Kind: MessageError, Text: MsgSelectService}
	case errors.Is(err, create_booking.ErrSlotRequired), errors.Is(err, create_booking.ErrInvalidSlot):
		return Message{Kind: MessageError, Text: MsgSelectSlot}
	case errors.Is(err, create_booking.ErrNameRequired):
		return Message{Kind: MessageError, Text: MsgEnterName}
	case errors.Is(err, create_booking.ErrInvalidPhone):
		return Message{Kind: MessageError, Text: MsgInvalidPhone}
	default:
		return Message{Kind: MessageError, Text: fmt.Sprintf(MsgBookingFailedFmt, err.Error())}
	}
}
